package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"lexkit/internal/mustache"
)

// FormatDirectiveTree prints the nested directive tree, one node per line.
func FormatDirectiveTree(w io.Writer, tree []*mustache.Directive, useColor bool) error {
	kind := paint(color.New(color.FgMagenta), useColor)
	var walk func(nodes []*mustache.Directive, depth int) error
	walk = func(nodes []*mustache.Directive, depth int) error {
		for _, d := range nodes {
			_, err := fmt.Fprintf(w, "%s%s %s @%d:%d\n", strings.Repeat("  ", depth),
				kind.Sprint(d.Type.String()), strconv.Quote(d.Value), d.Line, d.Column)
			if err != nil {
				return err
			}
			if err := walk(d.Children, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(tree, 0)
}

type documentJSON struct {
	Path      string                `json:"path"`
	Tree      []*mustache.Directive `json:"tree"`
	Variables []string              `json:"variables"`
}

// FormatDirectiveJSON writes the tree and variable names of a parsed template.
func FormatDirectiveJSON(w io.Writer, path string, doc *mustache.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(documentJSON{Path: path, Tree: doc.Tree, Variables: doc.Variables})
}
