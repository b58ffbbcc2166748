package lexer

import (
	"errors"
	"io"

	"lexkit/internal/chars"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// BufferTokenizer is implemented by every dialect.
type BufferTokenizer interface {
	TokenizeBuffer(text string) ([]token.Token, error)
}

// Tokenizer dispatches characters to states.
// Configure it before the first scan; afterwards it is read-only.
type Tokenizer struct {
	Options Options

	table *chars.Map[State]

	comment    State
	number     State
	quote      QuoteState
	symbol     SymbolState
	whitespace WhitespaceState
	word       WordState
}

// New returns a tokenizer with an empty table and no states. Until ranges
// are assigned every codepoint goes to the symbol slot, so New plus
// SetSymbolState already yields Symbol tokens.
func New() *Tokenizer {
	return &Tokenizer{table: chars.NewMap[State]()}
}

// SetCharacterState routes every codepoint in [from, to] to st.
// Later assignments win where ranges overlap.
func (tz *Tokenizer) SetCharacterState(from, to rune, st State) error {
	return tz.table.Set(from, to, st)
}

// ClearCharacterStates empties the dispatch table.
func (tz *Tokenizer) ClearCharacterStates() {
	tz.table.Clear()
}

// CharacterState returns the state for r. Codepoints without a table entry
// fall back to the symbol slot; nil means the scan emits Unknown.
func (tz *Tokenizer) CharacterState(r rune) State {
	if chars.IsEOF(r) {
		return nil
	}
	if st := tz.table.Lookup(r); st != nil {
		return st
	}
	if tz.symbol != nil {
		return tz.symbol
	}
	return nil
}

func (tz *Tokenizer) CommentState() State                   { return tz.comment }
func (tz *Tokenizer) SetCommentState(st State)              { tz.comment = st }
func (tz *Tokenizer) NumberState() State                    { return tz.number }
func (tz *Tokenizer) SetNumberState(st State)               { tz.number = st }
func (tz *Tokenizer) QuoteState() QuoteState                { return tz.quote }
func (tz *Tokenizer) SetQuoteState(st QuoteState)           { tz.quote = st }
func (tz *Tokenizer) SymbolState() SymbolState              { return tz.symbol }
func (tz *Tokenizer) SetSymbolState(st SymbolState)         { tz.symbol = st }
func (tz *Tokenizer) WhitespaceState() WhitespaceState      { return tz.whitespace }
func (tz *Tokenizer) SetWhitespaceState(st WhitespaceState) { tz.whitespace = st }
func (tz *Tokenizer) WordState() WordState                  { return tz.word }
func (tz *Tokenizer) SetWordState(st WordState)             { tz.word = st }

// NewStream starts a scan of text.
func (tz *Tokenizer) NewStream(text string) *Stream {
	return tz.NewScannerStream(source.NewScanner(text), nil)
}

// NewScannerStream starts a scan over sc. A nil read uses plain dispatch.
func (tz *Tokenizer) NewScannerStream(sc *source.Scanner, read ReadFunc) *Stream {
	if read == nil {
		read = (*Stream).Dispatch
	}
	return &Stream{tz: tz, sc: sc, read: read, lastType: token.Unknown}
}

// TokenizeBuffer scans text into a token list ending with Eof unless SkipEof is set.
// On error no partial list is returned.
func (tz *Tokenizer) TokenizeBuffer(text string) ([]token.Token, error) {
	return Collect(tz.NewStream(text))
}

// TokenizeBufferToStrings is TokenizeBuffer returning token values only.
func (tz *Tokenizer) TokenizeBufferToStrings(text string) ([]string, error) {
	tokens, err := tz.TokenizeBuffer(text)
	if err != nil {
		return nil, err
	}
	return token.Values(tokens), nil
}

// Collect drains a stream.
func Collect(s *Stream) ([]token.Token, error) {
	tokens := make([]token.Token, 0, 16)
	for {
		tok, err := s.Next()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
