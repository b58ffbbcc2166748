package lexer

import (
	"lexkit/internal/chars"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// SymbolNode is a trie node. A complete node ends a registered symbol.
type SymbolNode struct {
	parent   *SymbolNode
	children map[rune]*SymbolNode
	value    string
	typ      token.Type
	complete bool
}

func (n *SymbolNode) child(r rune) *SymbolNode {
	if n.children == nil || chars.IsEOF(r) {
		return nil
	}
	return n.children[r]
}

func (n *SymbolNode) ensureChild(r rune) *SymbolNode {
	if c := n.child(r); c != nil {
		return c
	}
	if n.children == nil {
		n.children = make(map[rune]*SymbolNode)
	}
	c := &SymbolNode{parent: n, value: n.value + string(r)}
	n.children[r] = c
	return c
}

// Value returns the character sequence from the root to n.
func (n *SymbolNode) Value() string { return n.value }

// Type returns the token type of a complete node.
func (n *SymbolNode) Type() token.Type { return n.typ }

// Complete reports whether a symbol ends at n.
func (n *SymbolNode) Complete() bool { return n.complete }

// deepestRead follows children as long as the input matches.
func (n *SymbolNode) deepestRead(sc *source.Scanner) *SymbolNode {
	node := n
	for {
		next := node.child(sc.Read())
		if next == nil {
			sc.Unread()
			return node
		}
		node = next
	}
}

// unreadToComplete walks back to the deepest complete ancestor.
func (n *SymbolNode) unreadToComplete(sc *source.Scanner) *SymbolNode {
	node := n
	for !node.complete && node.parent != nil && node.parent.parent != nil {
		sc.Unread()
		node = node.parent
	}
	return node
}

// SymbolRootNode is the root of the symbol trie.
type SymbolRootNode struct {
	SymbolNode
}

func NewSymbolRootNode() *SymbolRootNode {
	return &SymbolRootNode{}
}

// Add registers value. Its first character becomes a Symbol on its own
// unless that character already has a type.
func (root *SymbolRootNode) Add(value string, typ token.Type) error {
	if value == "" {
		return ErrEmptySymbol
	}
	runes := []rune(value)
	node := root.ensureChild(runes[0])
	if !node.complete {
		node.complete = true
		node.typ = token.Symbol
	}
	for _, r := range runes[1:] {
		node = node.ensureChild(r)
	}
	node.complete = true
	node.typ = typ
	return nil
}

// NextToken returns the longest registered symbol at the cursor, or the
// single raw character as a Symbol.
func (root *SymbolRootNode) NextToken(sc *source.Scanner) token.Token {
	line, column := sc.PeekLine(), sc.PeekColumn()
	ch := sc.Read()
	if chars.IsEOF(ch) {
		sc.Unread()
		return token.Token{}
	}
	node := root.child(ch)
	if node == nil {
		return token.New(token.Symbol, string(ch), line, column)
	}
	node = node.deepestRead(sc).unreadToComplete(sc)
	return token.New(node.typ, node.value, line, column)
}
