package lexer

import (
	"strings"

	"lexkit/internal/chars"
	"lexkit/internal/diag"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// GenericNumberState reads an optional '-', digits, and an optional
// fraction. "123." is a Float. Without any digit the input is pushed back
// and the symbol state takes over.
type GenericNumberState struct{}

func NewNumberState() *GenericNumberState { return &GenericNumberState{} }

func (GenericNumberState) NextToken(sc *source.Scanner, tz *Tokenizer) (token.Token, error) {
	line, column := sc.PeekLine(), sc.PeekColumn()
	var b strings.Builder
	consumed := 0
	absorbedDot, gotDigit := false, false

	ch := sc.Read()
	if ch == '-' {
		b.WriteRune(ch)
		consumed++
		ch = sc.Read()
	}
	for ; chars.IsDigit(ch); ch = sc.Read() {
		gotDigit = true
		b.WriteRune(ch)
		consumed++
	}
	if ch == '.' {
		absorbedDot = true
		b.WriteRune(ch)
		consumed++
		for ch = sc.Read(); chars.IsDigit(ch); ch = sc.Read() {
			gotDigit = true
			b.WriteRune(ch)
			consumed++
		}
	}
	sc.Unread()

	if !gotDigit {
		sc.UnreadMany(consumed)
		return delegateToSymbol(sc, tz, ErrNoDigits, diag.LexBadNumber)
	}

	typ := token.Integer
	if absorbedDot {
		typ = token.Float
	}
	return token.New(typ, b.String(), line, column), nil
}

func delegateToSymbol(sc *source.Scanner, tz *Tokenizer, sentinel error, code diag.Code) (token.Token, error) {
	symbols := symbolStateOf(tz)
	if symbols == nil {
		return token.Token{}, newTokenizeError(sentinel, code, sc.Peek(), "tokenizer must have an assigned symbol state")
	}
	return symbols.NextToken(sc, tz)
}
