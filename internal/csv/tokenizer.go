// Package csv configures the tokenizer for delimiter-separated values:
// field text is a Word, separators are Symbols, line breaks are Eol and
// quoted fields use doubled quotes as escapes. Numbers, whitespace and
// comments are not recognized.
package csv

import (
	"errors"
	"fmt"
	"slices"

	"lexkit/internal/chars"
	"lexkit/internal/lexer"
)

var (
	ErrInvalidSeparator = errors.New("invalid field separator")
	ErrInvalidQuote     = errors.New("invalid quote symbol")
)

// Tokenizer is a lexer.Tokenizer with CSV settings.
type Tokenizer struct {
	*lexer.Tokenizer

	fieldSeparators []rune
	quoteSymbols    []rune
	endOfLine       string
}

// NewTokenizer uses ',' as separator, '"' as quote and "\n\r" as end of line.
func NewTokenizer() *Tokenizer {
	t := &Tokenizer{
		Tokenizer:       lexer.New(),
		fieldSeparators: []rune{','},
		quoteSymbols:    []rune{'"'},
		endOfLine:       "\n\r",
	}
	t.SetNumberState(nil)
	t.SetWhitespaceState(nil)
	t.SetCommentState(nil)
	t.SetSymbolState(NewSymbolState())
	t.SetQuoteState(lexer.NewQuoteState())
	t.assignStates()
	return t
}

// FieldSeparators returns a copy of the separators.
func (t *Tokenizer) FieldSeparators() []rune { return slices.Clone(t.fieldSeparators) }

// SetFieldSeparators replaces the separators. CR, LF, NUL and current quote
// symbols are rejected.
func (t *Tokenizer) SetFieldSeparators(seps ...rune) error {
	for _, sep := range seps {
		if sep == chars.CR || sep == chars.LF || sep == chars.NIL || slices.Contains(t.quoteSymbols, sep) {
			return fmt.Errorf("%w: %q", ErrInvalidSeparator, sep)
		}
	}
	t.fieldSeparators = slices.Clone(seps)
	t.assignStates()
	return nil
}

// QuoteSymbols returns a copy of the quote symbols.
func (t *Tokenizer) QuoteSymbols() []rune { return slices.Clone(t.quoteSymbols) }

// SetQuoteSymbols replaces the quote symbols. CR, LF, NUL and current
// separators are rejected.
func (t *Tokenizer) SetQuoteSymbols(quotes ...rune) error {
	for _, q := range quotes {
		if q == chars.CR || q == chars.LF || q == chars.NIL || slices.Contains(t.fieldSeparators, q) {
			return fmt.Errorf("%w: %q", ErrInvalidQuote, q)
		}
	}
	t.quoteSymbols = slices.Clone(quotes)
	t.assignStates()
	return nil
}

// EndOfLine is the line terminator writers should emit.
func (t *Tokenizer) EndOfLine() string { return t.endOfLine }

func (t *Tokenizer) SetEndOfLine(eol string) { t.endOfLine = eol }

// assignStates rebuilds the word state and the dispatch table from the
// current separators and quotes.
func (t *Tokenizer) assignStates() {
	word := newWordState(t.fieldSeparators, t.quoteSymbols)
	t.SetWordState(word)

	t.ClearCharacterStates()
	set := func(r rune, st lexer.State) {
		if err := t.SetCharacterState(r, r, st); err != nil {
			panic(err)
		}
	}
	if err := t.SetCharacterState(0x0000, chars.MaxRune, word); err != nil {
		panic(err)
	}
	set(chars.CR, t.SymbolState())
	set(chars.LF, t.SymbolState())
	for _, sep := range t.fieldSeparators {
		set(sep, t.SymbolState())
	}
	for _, q := range t.quoteSymbols {
		set(q, t.QuoteState())
	}
}

// newWordState accepts everything except line breaks, separators and quotes.
func newWordState(seps, quotes []rune) *lexer.GenericWordState {
	st := lexer.NewWordState()
	st.ClearWordChars()
	disable := func(r rune) { _ = st.SetWordChars(r, r, false) }
	_ = st.SetWordChars(0x0000, chars.MaxRune, true)
	disable(chars.CR)
	disable(chars.LF)
	for _, r := range seps {
		disable(r)
	}
	for _, r := range quotes {
		disable(r)
	}
	return st
}
