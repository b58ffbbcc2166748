// Package expr configures the tokenizer for formula expressions: keywords,
// scientific numbers, C++ comments and quoted identifiers.
package expr

import (
	"lexkit/internal/chars"
	"lexkit/internal/lexer"
	"lexkit/internal/token"
)

// Symbols lists the multi-character operators of the expression language.
var Symbols = []string{"<=", ">=", "<>", "!=", "<<", ">>"}

// NewTokenizer builds an expression tokenizer.
func NewTokenizer() *lexer.Tokenizer {
	tz := lexer.New()

	tz.SetWhitespaceState(lexer.NewWhitespaceState())
	tz.SetSymbolState(NewSymbolState())
	tz.SetNumberState(NewNumberState())
	tz.SetQuoteState(NewQuoteState())
	tz.SetWordState(NewWordState())
	tz.SetCommentState(lexer.NewCppCommentState())

	set := func(from, to rune, st lexer.State) {
		if err := tz.SetCharacterState(from, to, st); err != nil {
			panic(err)
		}
	}
	set(0x0000, chars.MaxRune, tz.SymbolState())
	set(0x0000, ' ', tz.WhitespaceState())

	set('a', 'z', tz.WordState())
	set('A', 'Z', tz.WordState())
	set(0x00c0, 0x00ff, tz.WordState())
	set('_', '_', tz.WordState())

	set('0', '9', tz.NumberState())
	set('-', '-', tz.NumberState())
	set('.', '.', tz.NumberState())

	set('"', '"', tz.QuoteState())
	set('\'', '\'', tz.QuoteState())

	set('/', '/', tz.CommentState())
	return tz
}

// NewSymbolState returns a symbol state with the expression operators registered.
func NewSymbolState() *lexer.GenericSymbolState {
	st := lexer.NewSymbolState()
	for _, s := range Symbols {
		if err := st.Add(s, token.Symbol); err != nil {
			panic(err)
		}
	}
	return st
}

// NewQuoteState reads "..." as a quoted identifier (Word) and '...' as a string.
func NewQuoteState() *lexer.GenericQuoteState {
	return &lexer.GenericQuoteState{Types: map[rune]token.Type{'"': token.Word}}
}
