package mustache

import (
	"strings"

	"lexkit/internal/chars"
	"lexkit/internal/lexer"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

const (
	Open         = "{{"
	Close        = "}}"
	OpenEscaped  = "{{{"
	CloseEscaped = "}}}"
)

// Tokenizer switches between raw text and directive content.
type Tokenizer struct {
	*lexer.Tokenizer
	special *SpecialState
}

// NewTokenizer builds a template tokenizer. Comments and the Eof token are skipped.
func NewTokenizer() *Tokenizer {
	tz := lexer.New()

	symbols := lexer.NewSymbolState()
	for _, s := range []string{Open, Close, OpenEscaped, CloseEscaped} {
		if err := symbols.Add(s, token.Symbol); err != nil {
			panic(err)
		}
	}
	tz.SetSymbolState(symbols)
	tz.SetNumberState(nil)
	tz.SetQuoteState(lexer.NewQuoteState())
	tz.SetWhitespaceState(lexer.NewWhitespaceState())
	tz.SetWordState(lexer.NewWordState())
	tz.SetCommentState(nil)

	set := func(from, to rune, st lexer.State) {
		if err := tz.SetCharacterState(from, to, st); err != nil {
			panic(err)
		}
	}
	set(0x0000, 0x00ff, tz.SymbolState())
	set(0x0000, ' ', tz.WhitespaceState())

	set('a', 'z', tz.WordState())
	set('A', 'Z', tz.WordState())
	set('0', '9', tz.WordState())
	set('_', '_', tz.WordState())
	set(0x00c0, 0x00ff, tz.WordState())
	set(0x0100, chars.MaxRune, tz.WordState())

	set('"', '"', tz.QuoteState())
	set('\'', '\'', tz.QuoteState())

	tz.Options.SkipComments = true
	tz.Options.SkipEof = true

	return &Tokenizer{Tokenizer: tz, special: &SpecialState{}}
}

// NewStream starts a scan in raw text mode. After every "}}" or "}}}" the
// stream returns to raw text mode.
func (t *Tokenizer) NewStream(text string) *lexer.Stream {
	special := true
	return t.NewScannerStream(source.NewScanner(text), func(s *lexer.Stream) (token.Token, bool, error) {
		if special {
			tok, err := t.special.NextToken(s.Scanner(), t.Tokenizer)
			if err != nil {
				return token.Token{}, false, err
			}
			if tok.Value != "" {
				return tok, true, nil
			}
		}

		special = false
		tok, ok, err := s.Dispatch()
		if ok && (tok.Value == Close || tok.Value == CloseEscaped) {
			special = true
		}
		return tok, ok, err
	})
}

func (t *Tokenizer) TokenizeBuffer(text string) ([]token.Token, error) {
	return lexer.Collect(t.NewStream(text))
}

func (t *Tokenizer) TokenizeBufferToStrings(text string) ([]string, error) {
	tokens, err := t.TokenizeBuffer(text)
	if err != nil {
		return nil, err
	}
	return token.Values(tokens), nil
}

// SpecialState reads raw template text up to the next "{{".
type SpecialState struct{}

func (SpecialState) NextToken(sc *source.Scanner, _ *lexer.Tokenizer) (token.Token, error) {
	line, column := sc.PeekLine(), sc.PeekColumn()
	var b strings.Builder
	for ch := sc.Read(); !chars.IsEOF(ch); ch = sc.Read() {
		if ch == '{' && sc.Peek() == '{' {
			sc.Unread()
			return token.New(token.Special, b.String(), line, column), nil
		}
		b.WriteRune(ch)
	}
	sc.Unread()
	return token.New(token.Special, b.String(), line, column), nil
}
