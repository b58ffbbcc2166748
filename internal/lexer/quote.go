package lexer

import (
	"strings"

	"lexkit/internal/chars"
	"lexkit/internal/diag"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// GenericQuoteState reads from the opening delimiter through the next lone
// occurrence of it. A doubled delimiter inside the body is an escaped literal
// and both characters stay in the raw value.
type GenericQuoteState struct {
	// Types maps a delimiter to the token type it produces; Quoted otherwise.
	Types map[rune]token.Type
}

func NewQuoteState() *GenericQuoteState { return &GenericQuoteState{} }

func (s *GenericQuoteState) NextToken(sc *source.Scanner, tz *Tokenizer) (token.Token, error) {
	line, column := sc.PeekLine(), sc.PeekColumn()
	quote := sc.Read()
	if chars.IsEOF(quote) {
		sc.Unread()
		return token.Token{}, nil
	}

	value, closed := ReadQuoted(sc, quote)
	if !closed && tz != nil && tz.Options.StrictQuotes {
		return token.Token{}, newTokenizeError(ErrUnterminatedQuote, diag.LexUnterminatedString, quote,
			"unterminated quoted string")
	}

	typ := token.Quoted
	if t, ok := s.Types[quote]; ok {
		typ = t
	}
	return token.New(typ, value, line, column), nil
}

// ReadQuoted scans the rest of a literal whose opening quote was already read.
// It reports whether the closing delimiter was found.
func ReadQuoted(sc *source.Scanner, quote rune) (string, bool) {
	var b strings.Builder
	b.WriteRune(quote)
	for ch := sc.Read(); ; ch = sc.Read() {
		if chars.IsEOF(ch) {
			sc.Unread()
			return b.String(), false
		}
		b.WriteRune(ch)
		if ch != quote {
			continue
		}
		if sc.Peek() != quote {
			return b.String(), true
		}
		b.WriteRune(sc.Read())
	}
}

func (s *GenericQuoteState) EncodeString(value string, quote rune) string {
	return EncodeQuoted(value, quote)
}

func (s *GenericQuoteState) DecodeString(value string, quote rune) string {
	return DecodeQuoted(value, quote)
}

// EncodeQuoted wraps value in quote and doubles every inner quote.
func EncodeQuoted(value string, quote rune) string {
	q := string(quote)
	return q + strings.ReplaceAll(value, q, q+q) + q
}

// DecodeQuoted reverses EncodeQuoted. Values not bounded by quote on both
// ends are returned unchanged.
func DecodeQuoted(value string, quote rune) string {
	runes := []rune(value)
	if len(runes) < 2 || runes[0] != quote || runes[len(runes)-1] != quote {
		return value
	}
	q := string(quote)
	return strings.ReplaceAll(string(runes[1:len(runes)-1]), q+q, q)
}
