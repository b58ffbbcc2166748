package lexer

import (
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// GenericSymbolState recognizes symbols registered in its trie.
type GenericSymbolState struct {
	symbols *SymbolRootNode
}

func NewSymbolState() *GenericSymbolState {
	return &GenericSymbolState{symbols: NewSymbolRootNode()}
}

func (s *GenericSymbolState) Add(value string, typ token.Type) error {
	return s.symbols.Add(value, typ)
}

func (s *GenericSymbolState) NextToken(sc *source.Scanner, _ *Tokenizer) (token.Token, error) {
	return s.symbols.NextToken(sc), nil
}
