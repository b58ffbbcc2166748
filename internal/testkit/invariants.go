// Package testkit holds invariant checks shared by fuzz and unit tests.
package testkit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"lexkit/internal/lexer"
	"lexkit/internal/mustache"
	"lexkit/internal/token"
)

// CheckTokenStream runs the structural invariants on a successful scan of input:
// 1) Eof appears at most once and only as the last token; it is present unless SkipEof
// 2) every token except Eof has a non-empty value unless strings are decoded
// 3) positions never move backwards
// 4) with no filtering or rewriting options, the values concatenate back to input
func CheckTokenStream(input string, tokens []token.Token, opts lexer.Options) error {
	for i, tok := range tokens {
		if tok.Type == token.Eof {
			if i != len(tokens)-1 {
				return fmt.Errorf("eof at index %d of %d", i, len(tokens))
			}
			continue
		}
		if tok.Value == "" && !opts.DecodeStrings {
			return fmt.Errorf("empty %s token at %d:%d", tok.Type, tok.Line, tok.Column)
		}
	}
	hasEOF := len(tokens) > 0 && tokens[len(tokens)-1].Type == token.Eof
	if opts.SkipEof == hasEOF {
		return fmt.Errorf("eof present=%v with SkipEof=%v", hasEOF, opts.SkipEof)
	}

	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		if cur.Line < prev.Line || (cur.Line == prev.Line && cur.Column < prev.Column) {
			return fmt.Errorf("position went back: %q@%d:%d after %q@%d:%d",
				cur.Value, cur.Line, cur.Column, prev.Value, prev.Line, prev.Column)
		}
	}

	if !Lossless(opts) || !utf8.ValidString(input) {
		return nil
	}
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Value)
	}
	if got := b.String(); got != input {
		return fmt.Errorf("values do not reproduce input:\n got %q\nwant %q", got, input)
	}
	return nil
}

// Lossless reports whether opts keep every scanned character verbatim.
func Lossless(opts lexer.Options) bool {
	return !opts.SkipUnknown && !opts.SkipWhitespaces && !opts.SkipComments &&
		!opts.MergeWhitespaces && !opts.DecodeStrings
}

// CheckSameTokens reports the first difference between two scans of the same input.
func CheckSameTokens(a, b []token.Token) error {
	if len(a) != len(b) {
		return fmt.Errorf("token count differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("token %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	return nil
}

// CheckScanError verifies that a failed scan returned a positioned TokenizeError.
func CheckScanError(err error) error {
	var te *lexer.TokenizeError
	if !errors.As(err, &te) {
		return fmt.Errorf("scan error %T is not a TokenizeError: %v", err, err)
	}
	if te.Line < 1 || te.Column < 0 {
		return fmt.Errorf("scan error has no position: %v", te)
	}
	return nil
}

// CheckDocument verifies a parsed template:
// 1) only sections carry children
// 2) the tree holds no more nodes than the flat list
// 3) every variable name is the value of some directive
func CheckDocument(doc *mustache.Document) error {
	if doc == nil {
		return errors.New("nil document")
	}
	count := 0
	var walk func(nodes []*mustache.Directive) error
	walk = func(nodes []*mustache.Directive) error {
		for _, d := range nodes {
			count++
			if len(d.Children) > 0 && !d.IsSection() {
				return fmt.Errorf("%s directive %q has children", d.Type, d.Value)
			}
			if err := walk(d.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(doc.Tree); err != nil {
		return err
	}
	if count > len(doc.Directives) {
		return fmt.Errorf("tree has %d nodes, flat list %d", count, len(doc.Directives))
	}

	for _, name := range doc.Variables {
		found := false
		for _, d := range doc.Directives {
			if d.Value == name && d.Type != mustache.DirectiveValue && d.Type != mustache.DirectiveComment {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("variable %q has no directive", name)
		}
	}
	return nil
}

// CheckParseError verifies a failed template parse returned a typed error.
func CheckParseError(err error) error {
	var me *mustache.Error
	var te *lexer.TokenizeError
	if errors.As(err, &me) || errors.As(err, &te) {
		return nil
	}
	return fmt.Errorf("parse error %T is untyped: %v", err, err)
}
