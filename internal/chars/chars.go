package chars

import "unicode"

// EOF is returned by scanners once the buffer is exhausted.
const EOF rune = -1

// Special characters used by the line-break rule and by several states.
const (
	LF  rune = '\n'
	CR  rune = '\r'
	NIL rune = 0
)

// MaxRune is the upper bound of every open-ended character range.
const MaxRune = unicode.MaxRune

// IsEOF reports whether r is the end-of-input sentinel.
func IsEOF(r rune) bool { return r == EOF }

// IsEOL reports whether r is a CR or LF.
func IsEOL(r rune) bool { return r == LF || r == CR }

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsWhitespace reports whether r falls in the default whitespace class (control chars and space).
func IsWhitespace(r rune) bool { return r >= 0 && r <= ' ' }

// IsQuote reports whether r is a single or double quote.
func IsQuote(r rune) bool { return r == '"' || r == '\'' }
