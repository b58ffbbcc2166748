package expr

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lexkit/internal/chars"
	"lexkit/internal/lexer"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// Keywords are matched case-insensitively.
var Keywords = []string{"AND", "OR", "NOT", "XOR", "LIKE", "IS", "IN", "NULL", "TRUE", "FALSE"}

// WordState reads identifiers and reclassifies keywords.
// The token keeps its original casing; only the type changes.
type WordState struct {
	*lexer.GenericWordState
}

func NewWordState() *WordState {
	st := lexer.NewWordState()
	st.ClearWordChars()
	for _, r := range [][2]rune{
		{'a', 'z'}, {'A', 'Z'}, {'0', '9'}, {'_', '_'},
		{0x00c0, 0x00ff}, {0x0100, chars.MaxRune},
	} {
		if err := st.SetWordChars(r[0], r[1], true); err != nil {
			panic(err)
		}
	}
	return &WordState{GenericWordState: st}
}

func (s *WordState) NextToken(sc *source.Scanner, tz *lexer.Tokenizer) (token.Token, error) {
	tok, err := s.GenericWordState.NextToken(sc, tz)
	if err != nil || tok.Value == "" {
		return tok, err
	}
	if IsKeyword(tok.Value) {
		tok.Type = token.Keyword
	}
	return tok, nil
}

// IsKeyword reports whether word is a keyword in any casing.
func IsKeyword(word string) bool {
	// Caser не потокобезопасен, поэтому создаём на каждый вызов
	upper := cases.Upper(language.Und).String(word)
	return slices.Contains(Keywords, upper)
}
