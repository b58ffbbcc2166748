package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"lexkit/internal/source"
)

// shortLine is one rendered row of FormatShortDiagnostics.
type shortLine struct {
	sev    string
	code   string
	path   string
	line   int
	column int
	msg    string
}

// FormatShortDiagnostics renders one line per diagnostic (and per note when
// includeNotes is set): "<severity> <code> <path>:<line>:<col> <message>".
// Paths are relative to the file set base; rows are sorted by path and
// position so the output is stable across parallel runs.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil {
		return ""
	}
	var rows []shortLine
	for i := range diags {
		d := &diags[i]
		if path, ok := shortPath(fs, d.Primary.File); ok {
			rows = append(rows, shortLine{d.Severity.Label(), d.Code.ID(), path, d.Primary.Line, d.Primary.Column, oneLine(d.Message)})
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			if path, ok := shortPath(fs, n.Loc.File); ok {
				rows = append(rows, shortLine{"note", d.Code.ID(), path, n.Loc.Line, n.Loc.Column, oneLine(n.Msg)})
			}
		}
	}

	slices.SortStableFunc(rows, func(a, b shortLine) int {
		return cmp.Or(
			strings.Compare(a.path, b.path),
			cmp.Compare(a.line, b.line),
			cmp.Compare(a.column, b.column),
		)
	})

	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = fmt.Sprintf("%s %s %s:%d:%d %s", r.sev, r.code, r.path, r.line, r.column, r.msg)
	}
	return strings.Join(out, "\n")
}

func shortPath(fs *source.FileSet, id source.FileID) (string, bool) {
	if int(id) >= fs.Len() {
		return "", false
	}
	p := filepath.ToSlash(fs.Get(id).FormatPath("relative", fs.BaseDir()))
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p, true
}

func oneLine(msg string) string {
	return strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg))
}
