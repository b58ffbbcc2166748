package token

import "fmt"

// Token represents a single lexical unit with the position of its first character.
type Token struct {
	Type   Type   `json:"type" msgpack:"type"`
	Value  string `json:"value" msgpack:"value"`
	Line   int    `json:"line" msgpack:"line"`
	Column int    `json:"column" msgpack:"column"`
}

// New builds a token.
func New(typ Type, value string, line, column int) Token {
	return Token{Type: typ, Value: value, Line: line, Column: column}
}

// Equal compares type and value only.
func (t Token) Equal(other Token) bool {
	return t.Type == other.Type && t.Value == other.Value
}

// IsEOF reports whether the token terminates the stream.
func (t Token) IsEOF() bool { return t.Type == Eof }

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool {
	return t.Type == Whitespace || t.Type == Comment
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Type, t.Value, t.Line, t.Column)
}

// Values returns the values of tokens in order.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Value
	}
	return out
}
