package mustache

import "fmt"

// DirectiveType classifies template directives.
type DirectiveType uint8

const (
	DirectiveUnknown DirectiveType = iota
	DirectiveValue
	DirectiveVariable
	DirectiveEscapedVariable
	DirectiveSection
	DirectiveInvertedSection
	DirectiveSectionEnd
	DirectiveComment
	DirectivePartial
)

var directiveNames = [...]string{
	DirectiveUnknown:         "Unknown",
	DirectiveValue:           "Value",
	DirectiveVariable:        "Variable",
	DirectiveEscapedVariable: "EscapedVariable",
	DirectiveSection:         "Section",
	DirectiveInvertedSection: "InvertedSection",
	DirectiveSectionEnd:      "SectionEnd",
	DirectiveComment:         "Comment",
	DirectivePartial:         "Partial",
}

func (t DirectiveType) String() string {
	if int(t) < len(directiveNames) {
		return directiveNames[t]
	}
	return fmt.Sprintf("DirectiveType(%d)", uint8(t))
}

func (t DirectiveType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Directive is one node of the template tree. Sections carry their body in Children.
// Value is empty for a SectionEnd that closes the innermost section.
type Directive struct {
	Type     DirectiveType `json:"type"`
	Value    string        `json:"value,omitempty"`
	Line     int           `json:"line"`
	Column   int           `json:"column"`
	Children []*Directive  `json:"children,omitempty"`
}

// IsSection reports whether the directive opens a block.
func (d *Directive) IsSection() bool {
	return d.Type == DirectiveSection || d.Type == DirectiveInvertedSection
}
