package mustache

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"lexkit/internal/chars"
	"lexkit/internal/diag"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// Document is the result of parsing a template.
type Document struct {
	Template   string        // trimmed template text
	Tokens     []token.Token // tokens the directives were built from
	Directives []Directive   // flat directive list in source order
	Tree       []*Directive  // sections nested with their bodies
	Variables  []string      // referenced names, first spelling wins
}

// Parse tokenizes and parses a template. Surrounding whitespace is dropped;
// positions still refer to the untrimmed text.
func Parse(template string) (*Document, error) {
	trimmed := strings.TrimLeftFunc(template, unicode.IsSpace)
	lead := template[:len(template)-len(trimmed)]
	template = strings.TrimRightFunc(trimmed, unicode.IsSpace)

	var tokens []token.Token
	if template != "" {
		tz := NewTokenizer()
		tz.Options.SkipWhitespaces = true
		tz.Options.DecodeStrings = true
		var err error
		if tokens, err = tz.TokenizeBuffer(template); err != nil {
			return nil, err
		}
		shiftPositions(tokens, lead)
	}
	return parse(template, tokens)
}

// shiftPositions moves token positions past the text in lead.
func shiftPositions(tokens []token.Token, lead string) {
	if lead == "" {
		return
	}
	sc := source.NewScanner(lead)
	for !chars.IsEOF(sc.Read()) {
	}
	sc.Unread()
	line, column := sc.Line(), sc.Column()
	for i := range tokens {
		if tokens[i].Line == 1 {
			tokens[i].Column += column
		}
		tokens[i].Line += line - 1
	}
}

// ParseTokens parses an already tokenized template.
func ParseTokens(tokens []token.Token) (*Document, error) {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Value)
	}
	return parse(b.String(), tokens)
}

func parse(template string, tokens []token.Token) (*Document, error) {
	doc := &Document{Template: template, Tokens: tokens}
	if len(tokens) == 0 {
		return doc, nil
	}

	flat, err := lexDirectives(tokens)
	if err != nil {
		return nil, err
	}
	doc.Directives = flat

	b := &treeBuilder{items: flat}
	if doc.Tree, err = b.build(tokens[len(tokens)-1]); err != nil {
		return nil, err
	}
	doc.Variables = variableNames(flat)
	return doc, nil
}

type lexState uint8

const (
	stateValue lexState = iota
	stateOperator1
	stateOperator2
	stateVariable
	stateComment
	stateClosure
)

func isClose(v string) bool { return v == Close || v == CloseEscaped }

// lexDirectives folds the token stream into a flat directive list.
func lexDirectives(tokens []token.Token) ([]Directive, error) {
	var (
		out       []Directive
		state     = stateValue
		closing   string
		operator1 string
		operator2 string
		variable  string
		comment   []string
		openLine  int
		openCol   int
	)

	for _, tok := range tokens {
		if state == stateComment {
			if tok.Type != token.Symbol || !isClose(tok.Value) {
				comment = append(comment, tok.Value)
				continue
			}
			state = stateClosure
		}

		switch tok.Type {
		case token.Whitespace:
			continue

		case token.Special:
			if state == stateValue {
				out = append(out, Directive{Type: DirectiveValue, Value: tok.Value, Line: tok.Line, Column: tok.Column})
				continue
			}

		case token.Word:
			if state == stateOperator1 {
				state = stateVariable
			}
			if state == stateOperator2 && (tok.Value == "if" || tok.Value == "unless") {
				operator2 = tok.Value
				state = stateVariable
				continue
			}
			if state == stateOperator2 {
				state = stateVariable
			}
			if state == stateVariable {
				variable = tok.Value
				state = stateClosure
				continue
			}

		case token.Symbol:
			switch {
			case state == stateValue && (tok.Value == Open || tok.Value == OpenEscaped):
				closing = Close
				if tok.Value == OpenEscaped {
					closing = CloseEscaped
				}
				openLine, openCol = tok.Line, tok.Column
				state = stateOperator1
				continue
			case state == stateOperator1 && tok.Value == "!":
				operator1 = tok.Value
				comment = comment[:0]
				state = stateComment
				continue
			case state == stateOperator1 && tok.Value == ">":
				return nil, newError(diag.MustachePartialsNotSupported, tok.Line, tok.Column,
					"partials are not supported")
			case state == stateOperator1 && (tok.Value == "/" || tok.Value == "#" || tok.Value == "^"):
				operator1 = tok.Value
				state = stateOperator2
				continue
			}

			if state == stateVariable && isClose(tok.Value) {
				// "{{#if}}" names the section after the operator itself
				if operator1 != "/" {
					variable = operator2
					operator2 = ""
				}
				state = stateClosure
			}

			if state == stateClosure && isClose(tok.Value) {
				if tok.Value != closing {
					return nil, newError(diag.MustacheMismatchedBrackets, tok.Line, tok.Column,
						"mismatched brackets, expected '%s'", closing)
				}

				d := Directive{Line: openLine, Column: openCol, Value: variable}
				switch {
				case operator1 == "#" && (operator2 == "" || operator2 == "if"):
					d.Type = DirectiveSection
				case operator1 == "#" && operator2 == "unless":
					d.Type = DirectiveInvertedSection
				case operator1 == "^" && operator2 == "":
					d.Type = DirectiveInvertedSection
				case operator1 == "/":
					d.Type = DirectiveSectionEnd
				case operator1 == "!":
					d.Type = DirectiveComment
					d.Value = strings.Join(comment, " ")
				case operator1 == "":
					d.Type = DirectiveVariable
					if closing == CloseEscaped {
						d.Type = DirectiveEscapedVariable
					}
				default:
					return nil, newError(diag.MustacheInternal, tok.Line, tok.Column, "internal error")
				}
				out = append(out, d)

				operator1, operator2, variable = "", "", ""
				state = stateValue
				continue
			}

		case token.Unknown:
			return nil, newError(diag.MustacheErrorNear, tok.Line, tok.Column, "syntax error near '%s'", tok.Value)
		}

		return nil, newError(diag.MustacheUnexpectedSymbol, tok.Line, tok.Column, "unexpected symbol '%s'", tok.Value)
	}

	if state != stateValue {
		last := tokens[len(tokens)-1]
		return nil, newError(diag.MustacheUnexpectedEnd, last.Line, last.Column, "unexpected end of template")
	}
	return out, nil
}

type treeBuilder struct {
	items []Directive
	pos   int
}

func (b *treeBuilder) hasMore() bool { return b.pos < len(b.items) }

func (b *treeBuilder) next() *Directive {
	d := b.items[b.pos]
	b.pos++
	return &Directive{Type: d.Type, Value: d.Value, Line: d.Line, Column: d.Column}
}

func (b *treeBuilder) build(last token.Token) ([]*Directive, error) {
	if !b.hasMore() {
		return nil, newError(diag.MustacheUnexpectedEnd, last.Line, last.Column, "unexpected end of template")
	}
	var out []*Directive
	for b.hasMore() {
		d := b.next()
		if d.Type == DirectiveSectionEnd {
			return nil, newError(diag.MustacheUnexpectedSectionEnd, d.Line, d.Column,
				"unexpected section end for variable '%s'", d.Value)
		}
		if d.IsSection() {
			children, err := b.section(d, last)
			if err != nil {
				return nil, err
			}
			d.Children = children
		}
		out = append(out, d)
	}
	return out, nil
}

// section collects the body of open until its matching end.
// An end without a name closes the innermost section.
func (b *treeBuilder) section(open *Directive, last token.Token) ([]*Directive, error) {
	var out []*Directive
	for b.hasMore() {
		d := b.next()
		if d.Type == DirectiveSectionEnd {
			if d.Value == open.Value || d.Value == "" {
				return out, nil
			}
			return nil, newError(diag.MustacheUnexpectedSectionEnd, d.Line, d.Column,
				"unexpected section end for variable '%s'", open.Value)
		}
		if d.IsSection() {
			children, err := b.section(d, last)
			if err != nil {
				return nil, err
			}
			d.Children = children
		}
		out = append(out, d)
	}
	return nil, newError(diag.MustacheNotClosedSection, open.Line, open.Column,
		"not closed section for variable '%s'", open.Value)
}

// variableNames lists referenced names once, compared case-insensitively.
func variableNames(flat []Directive) []string {
	fold := cases.Fold()
	seen := make(map[string]struct{})
	var names []string
	for _, d := range flat {
		if d.Type == DirectiveValue || d.Type == DirectiveComment || d.Value == "" {
			continue
		}
		key := fold.String(d.Value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, d.Value)
	}
	return names
}
