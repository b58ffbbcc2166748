package lexer

import (
	"lexkit/internal/chars"
	"lexkit/internal/token"
)

// NewGeneric builds the general-purpose tokenizer: '#' line comments,
// quoted strings with '"' and '\'', signed decimal numbers, words and the
// two-character comparison symbols.
func NewGeneric() *Tokenizer {
	tz := New()

	symbols := NewSymbolState()
	for _, s := range []string{"<>", "<=", ">="} {
		_ = symbols.Add(s, token.Symbol)
	}
	tz.SetSymbolState(symbols)
	tz.SetCommentState(NewCommentState())
	tz.SetNumberState(NewNumberState())
	tz.SetQuoteState(NewQuoteState())
	tz.SetWhitespaceState(NewWhitespaceState())
	tz.SetWordState(NewWordState())

	must(tz.SetCharacterState(0x0000, 0x00ff, tz.SymbolState()))
	must(tz.SetCharacterState(0x0000, ' ', tz.WhitespaceState()))

	must(tz.SetCharacterState('a', 'z', tz.WordState()))
	must(tz.SetCharacterState('A', 'Z', tz.WordState()))
	must(tz.SetCharacterState(0x00c0, 0x00ff, tz.WordState()))
	must(tz.SetCharacterState(0x0100, chars.MaxRune, tz.WordState()))

	must(tz.SetCharacterState('-', '-', tz.NumberState()))
	must(tz.SetCharacterState('0', '9', tz.NumberState()))
	must(tz.SetCharacterState('.', '.', tz.NumberState()))

	must(tz.SetCharacterState('"', '"', tz.QuoteState()))
	must(tz.SetCharacterState('\'', '\'', tz.QuoteState()))

	must(tz.SetCharacterState('#', '#', tz.CommentState()))
	return tz
}

// must panics on errors from constant preset ranges.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
