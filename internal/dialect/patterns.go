package dialect

import (
	"unicode/utf8"

	"lexkit/internal/token"
)

// adjacent reports whether tok starts right where prev ends on the same line.
func adjacent(prev, tok token.Token) bool {
	return prev.Line == tok.Line && prev.Column+utf8.RuneCountInString(prev.Value) == tok.Column
}

// ObserveTokenPair records evidence from a sliding two-token window over a
// generic scan. Tokens must be fed in source order.
func ObserveTokenPair(e *Evidence, prev, tok token.Token) {
	if e == nil || tok.Type != token.Symbol {
		return
	}
	hint := func(k Kind, score int, reason string) {
		e.Add(Hint{Dialect: k, Score: score, Reason: reason, Line: prev.Line, Column: prev.Column})
	}

	if prev.Type == token.Symbol && adjacent(prev, tok) {
		switch prev.Value + tok.Value {
		case "{{":
			hint(Mustache, 5, "template directive opener {{")
		case "}}":
			hint(Mustache, 2, "template directive closer }}")
		case "!=":
			hint(Expression, 3, "comparison operator !=")
		case "//", "/*":
			hint(Expression, 1, "C-style comment marker")
		}
	}

	switch tok.Value {
	case "<>", "<=", ">=":
		hint(Expression, 3, "comparison operator "+tok.Value)
	case ",", ";", "|":
		// separators right after a quoted field or a value are typical of CSV rows
		if prev.Type == token.Quoted || prev.Type == token.Word || prev.Type == token.Integer || prev.Type == token.Float {
			hint(CSV, 1, "field separator "+tok.Value)
		}
	case "(":
		if prev.Type == token.Word && adjacent(prev, tok) {
			hint(Expression, 1, "function call "+prev.Value+"(")
		}
	}
}
