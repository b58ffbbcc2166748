package lexer

import (
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// State recognizes one kind of token. It is invoked when the next unread
// character was classified into it, consumes at least one character and
// never reads past its own boundary. tz may be nil.
type State interface {
	NextToken(sc *source.Scanner, tz *Tokenizer) (token.Token, error)
}

// SymbolState recognizes registered operators by longest match.
type SymbolState interface {
	State
	Add(value string, typ token.Type) error
}

// QuoteState recognizes delimited literals and knows their escaping.
type QuoteState interface {
	State
	EncodeString(value string, quote rune) string
	DecodeString(value string, quote rune) string
}

// WordState recognizes runs of configurable word characters.
type WordState interface {
	State
	SetWordChars(from, to rune, enable bool) error
	ClearWordChars()
}

// WhitespaceState recognizes runs of configurable whitespace characters.
type WhitespaceState interface {
	State
	SetWhitespaceChars(from, to rune, enable bool) error
	ClearWhitespaceChars()
}

// StateFunc adapts a function to the State interface.
type StateFunc func(sc *source.Scanner, tz *Tokenizer) (token.Token, error)

func (f StateFunc) NextToken(sc *source.Scanner, tz *Tokenizer) (token.Token, error) {
	return f(sc, tz)
}

func symbolStateOf(tz *Tokenizer) SymbolState {
	if tz == nil {
		return nil
	}
	return tz.SymbolState()
}
