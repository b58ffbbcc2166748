package token

import "fmt"

// Type represents the category of a token.
type Type uint8

const (
	// Unknown marks a character no state claimed.
	Unknown Type = iota
	// Eof terminates a token stream.
	Eof
	// Eol is an end-of-line marker (CSV only).
	Eol
	// Integer is a number without a decimal point.
	Integer
	// Float is a number with a decimal point or exponent.
	Float
	// Number replaces Integer and Float when numbers are unified.
	Number
	// Word is an identifier-like run of word characters.
	Word
	// Keyword is a word recognized from a fixed keyword list.
	Keyword
	// Whitespace is a run of whitespace characters.
	Whitespace
	// Comment is a line or block comment including its markers.
	Comment
	// Symbol is an operator or punctuation, possibly multi-character.
	Symbol
	// Quoted is a delimited string literal.
	Quoted
	// Special is raw text outside template directives.
	Special

	typeCount
)

var typeNames = [typeCount]string{
	Unknown:    "Unknown",
	Eof:        "Eof",
	Eol:        "Eol",
	Integer:    "Integer",
	Float:      "Float",
	Number:     "Number",
	Word:       "Word",
	Keyword:    "Keyword",
	Whitespace: "Whitespace",
	Comment:    "Comment",
	Symbol:     "Symbol",
	Quoted:     "Quoted",
	Special:    "Special",
}

func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType converts a type name back to its Type.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return Unknown, fmt.Errorf("unknown token type: %q", s)
}

// MarshalText encodes the type by name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// IsNumeric reports whether the type is one of the number types.
func (t Type) IsNumeric() bool {
	return t == Integer || t == Float || t == Number
}
