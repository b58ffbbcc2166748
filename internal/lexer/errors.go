package lexer

import (
	"errors"
	"fmt"

	"lexkit/internal/chars"
	"lexkit/internal/diag"
	"lexkit/internal/source"
)

var (
	ErrNoDigits            = errors.New("number has no digits")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrUnterminatedQuote   = errors.New("unterminated quoted string")
	ErrMisusedState        = errors.New("character state used on a character it does not handle")
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
	ErrEmptySymbol         = errors.New("symbol must have at least one character")
	// ErrInvalidRange is returned by range setters for empty or out-of-range intervals.
	ErrInvalidRange = chars.ErrInvalidRange
)

// TokenizeError aborts a scan. Line and Column point at the start of the
// token that failed, i.e. right after the last emitted token.
type TokenizeError struct {
	Code   diag.Code
	Char   rune
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *TokenizeError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Char != chars.EOF && e.Char != 0 {
		return fmt.Sprintf("%d:%d: %s (near %q)", e.Line, e.Column, msg, e.Char)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, msg)
}

func (e *TokenizeError) Unwrap() error { return e.Err }

// Diagnostic converts the error into a diag record for the given file.
func (e *TokenizeError) Diagnostic(file source.FileID) diag.Diagnostic {
	return diag.NewError(e.Code, diag.Location{File: file, Line: e.Line, Column: e.Column}, e.Error())
}

func newTokenizeError(sentinel error, code diag.Code, ch rune, msg string) *TokenizeError {
	return &TokenizeError{Code: code, Char: ch, Msg: msg, Err: sentinel}
}

func misused(state string, ch rune) *TokenizeError {
	return newTokenizeError(ErrMisusedState, diag.LexMisusedState, ch,
		fmt.Sprintf("incorrect usage of %s", state))
}
