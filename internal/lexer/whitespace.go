package lexer

import (
	"strings"

	"lexkit/internal/chars"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// GenericWhitespaceState reads a maximal run of whitespace characters.
type GenericWhitespaceState struct {
	set *chars.Map[bool]
}

// NewWhitespaceState treats 0x00..0x20 as whitespace.
func NewWhitespaceState() *GenericWhitespaceState {
	s := &GenericWhitespaceState{set: chars.NewMap[bool]()}
	_ = s.SetWhitespaceChars(0, ' ', true)
	return s
}

func (s *GenericWhitespaceState) NextToken(sc *source.Scanner, _ *Tokenizer) (token.Token, error) {
	line, column := sc.PeekLine(), sc.PeekColumn()
	var b strings.Builder
	ch := sc.Read()
	for ; s.set.Lookup(ch); ch = sc.Read() {
		b.WriteRune(ch)
	}
	sc.Unread()
	return token.New(token.Whitespace, b.String(), line, column), nil
}

func (s *GenericWhitespaceState) SetWhitespaceChars(from, to rune, enable bool) error {
	return s.set.Set(from, to, enable)
}

func (s *GenericWhitespaceState) ClearWhitespaceChars() {
	s.set.Clear()
}
