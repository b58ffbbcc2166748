package mustache

import (
	"fmt"

	"lexkit/internal/diag"
	"lexkit/internal/source"
)

// Error reports a malformed template. Code is one of the diag.Mustache* codes.
type Error struct {
	Code   diag.Code
	Msg    string
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Code.ID(), e.Line, e.Column, e.Msg)
}

// Is matches errors by code so callers can test against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code && t.Msg == ""
}

// Diagnostic converts the error into a diag record for the given file.
func (e *Error) Diagnostic(file source.FileID) diag.Diagnostic {
	return diag.NewError(e.Code, diag.Location{File: file, Line: e.Line, Column: e.Column}, e.Msg)
}

var (
	ErrUnexpectedEnd        = &Error{Code: diag.MustacheUnexpectedEnd}
	ErrErrorNear            = &Error{Code: diag.MustacheErrorNear}
	ErrMismatchedBrackets   = &Error{Code: diag.MustacheMismatchedBrackets}
	ErrUnexpectedSymbol     = &Error{Code: diag.MustacheUnexpectedSymbol}
	ErrUnexpectedSectionEnd = &Error{Code: diag.MustacheUnexpectedSectionEnd}
	ErrNotClosedSection     = &Error{Code: diag.MustacheNotClosedSection}
	ErrPartialsNotSupported = &Error{Code: diag.MustachePartialsNotSupported}
	ErrInternal             = &Error{Code: diag.MustacheInternal}
)

func newError(code diag.Code, line, column int, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Line: line, Column: column}
}
