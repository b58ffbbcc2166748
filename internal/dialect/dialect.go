package dialect

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is a tokenizer preset.
type Kind uint8

const (
	Unknown Kind = iota
	Generic
	Expression
	CSV
	Mustache

	kindCount
)

func (k Kind) String() string {
	switch k {
	case Generic:
		return "generic"
	case Expression:
		return "expression"
	case CSV:
		return "csv"
	case Mustache:
		return "mustache"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// Parse maps a dialect name to its Kind. "auto" and "" map to Unknown,
// which asks Detect to decide per file.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Unknown, nil
	case "generic":
		return Generic, nil
	case "expression", "expr":
		return Expression, nil
	case "csv":
		return CSV, nil
	case "mustache":
		return Mustache, nil
	}
	return Unknown, fmt.Errorf("unknown dialect %q (expected generic|expression|csv|mustache|auto)", name)
}

// Info describes a dialect for listings.
type Info struct {
	Kind        Kind
	Extensions  []string
	Description string
}

var infos = [...]Info{
	{Generic, nil, "words, numbers, quoted strings, symbols and # comments"},
	{Expression, []string{".expr", ".formula"}, "formula operators, scientific numbers, keywords, // and /* */ comments"},
	{CSV, []string{".csv", ".tsv", ".psv"}, "field separators, quoted fields and line ends"},
	{Mustache, []string{".mustache", ".hbs", ".tmpl"}, "template text with {{ }} directives"},
}

// All lists the dialects in display order.
func All() []Info {
	return append([]Info(nil), infos[:]...)
}

// ByExtension returns the dialect registered for the file extension of path.
func ByExtension(path string) (Kind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Unknown, false
	}
	for _, info := range infos {
		for _, e := range info.Extensions {
			if e == ext {
				return info.Kind, true
			}
		}
	}
	return Unknown, false
}
