package expr

import (
	"lexkit/internal/chars"
	"lexkit/internal/diag"
	"lexkit/internal/lexer"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// NumberState reads unsigned numbers with an optional exponent.
// A leading '-' is always an operator here.
type NumberState struct {
	base *lexer.GenericNumberState
}

func NewNumberState() *NumberState {
	return &NumberState{base: lexer.NewNumberState()}
}

func (s *NumberState) NextToken(sc *source.Scanner, tz *lexer.Tokenizer) (token.Token, error) {
	if sc.Peek() == '-' {
		if tz == nil || tz.SymbolState() == nil {
			return token.Token{}, &lexer.TokenizeError{
				Code: diag.LexBadNumber, Char: '-', Err: lexer.ErrNoDigits,
				Msg: "tokenizer must have an assigned symbol state",
			}
		}
		return tz.SymbolState().NextToken(sc, tz)
	}

	tok, err := s.base.NextToken(sc, tz)
	if err != nil || (tok.Type != token.Integer && tok.Type != token.Float) {
		return tok, err
	}

	if next := sc.Peek(); next != 'e' && next != 'E' {
		return tok, nil
	}

	exp := []rune{sc.Read()}
	if next := sc.Peek(); next == '-' || next == '+' {
		exp = append(exp, sc.Read())
	}
	if !chars.IsDigit(sc.Peek()) {
		// не экспонента: откатываем всё
		sc.UnreadMany(len(exp))
		return tok, nil
	}
	for chars.IsDigit(sc.Peek()) {
		exp = append(exp, sc.Read())
	}
	return token.New(token.Float, tok.Value+string(exp), tok.Line, tok.Column), nil
}
