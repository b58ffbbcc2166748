package diag

import (
	"fmt"

	"lexkit/internal/source"
)

// Location points at a character inside a loaded file.
type Location struct {
	File   source.FileID
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d:%d", l.File, l.Line, l.Column)
}

type Note struct {
	Loc Location
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Location
	Notes    []Note
}

func New(sev Severity, code Code, primary Location, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary Location, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(loc Location, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Loc: loc, Msg: msg})
	return d
}
