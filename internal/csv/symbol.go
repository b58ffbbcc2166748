package csv

import (
	"lexkit/internal/chars"
	"lexkit/internal/lexer"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// SymbolState emits separators as single-character Symbols and line breaks
// ("\n", "\r", "\r\n", "\n\r") as Eol.
type SymbolState struct {
	*lexer.GenericSymbolState
}

func NewSymbolState() *SymbolState {
	st := lexer.NewSymbolState()
	for _, eol := range []string{"\n", "\r", "\r\n", "\n\r"} {
		if err := st.Add(eol, token.Eol); err != nil {
			panic(err)
		}
	}
	return &SymbolState{GenericSymbolState: st}
}

func (s *SymbolState) NextToken(sc *source.Scanner, tz *lexer.Tokenizer) (token.Token, error) {
	line, column := sc.PeekLine(), sc.PeekColumn()
	ch := sc.Read()
	if !chars.IsEOL(ch) && !chars.IsEOF(ch) {
		return token.New(token.Symbol, string(ch), line, column), nil
	}
	sc.Unread()
	return s.GenericSymbolState.NextToken(sc, tz)
}
