package lexer

import (
	"strings"

	"lexkit/internal/chars"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// GenericWordState reads a maximal run of word characters.
// The dispatch table decides which characters may start a word;
// the word set decides which may continue it.
type GenericWordState struct {
	set *chars.Map[bool]
}

// NewWordState accepts a-z, A-Z, 0-9, '-', '_', 0xC0-0xFF and everything from 0x100 up.
func NewWordState() *GenericWordState {
	s := &GenericWordState{set: chars.NewMap[bool]()}
	for _, r := range [][2]rune{
		{'a', 'z'}, {'A', 'Z'}, {'0', '9'}, {'-', '-'}, {'_', '_'},
		{0x00c0, 0x00ff}, {0x0100, chars.MaxRune},
	} {
		_ = s.SetWordChars(r[0], r[1], true)
	}
	return s
}

func (s *GenericWordState) NextToken(sc *source.Scanner, _ *Tokenizer) (token.Token, error) {
	line, column := sc.PeekLine(), sc.PeekColumn()
	var b strings.Builder
	ch := sc.Read()
	for ; s.set.Lookup(ch); ch = sc.Read() {
		b.WriteRune(ch)
	}
	sc.Unread()
	return token.New(token.Word, b.String(), line, column), nil
}

func (s *GenericWordState) SetWordChars(from, to rune, enable bool) error {
	return s.set.Set(from, to, enable)
}

func (s *GenericWordState) ClearWordChars() {
	s.set.Clear()
}
