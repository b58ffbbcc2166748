package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"lexkit/internal/diag"
	"lexkit/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	fileID := fs.AddVirtual("/home/user/project/data/people.csv", []byte("name,\"unterminated\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnterminatedString, diag.Location{File: fileID, Line: 1, Column: 6}, "unterminated quoted field"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/data/people.csv:1:6"},
		{"relative", PathModeRelative, "data/people.csv:1:6"},
		{"basename", PathModeBasename, "people.csv:1:6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			out := buf.String()

			for _, want := range []string{tt.contains, "ERROR", "LEX1002", "unterminated quoted field"} {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in output:\n%s", want, out)
				}
			}
		})
	}
}

func TestPrettyCaretUsesDisplayWidth(t *testing.T) {
	fs := source.NewFileSet()
	// "日本" occupies four cells, so the caret for column 4 sits after five cells
	fileID := fs.AddVirtual("wide.txt", []byte("日本,x?\n"))

	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, diag.Location{File: fileID, Line: 1, Column: 4}, "odd char"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header, source and caret lines:\n%s", buf.String())
	}
	if lines[1] != " 1 | 日本,x?" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "   |      ^" {
		t.Errorf("caret line = %q", lines[2])
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.mustache", []byte("{{#a}}\n{{/b}}\n"))

	d := diag.NewError(diag.MustacheUnexpectedSectionEnd, diag.Location{File: fileID, Line: 2, Column: 1}, "unexpected section end").
		WithNote(diag.Location{File: fileID, Line: 1, Column: 1}, "section opened here")
	bag := diag.NewBag(1)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: -1, ShowNotes: true})
	out := buf.String()
	if !strings.Contains(out, "note: t.mustache:1:1: section opened here") {
		t.Errorf("note missing:\n%s", out)
	}
	if strings.Contains(out, " | ") {
		t.Errorf("negative context should hide source lines:\n%s", out)
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{Context: -1})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes should be hidden by default:\n%s", buf.String())
	}
}

func TestPrettyReportsDropped(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.csv", []byte("\"x\n"))
	bag := diag.NewBag(1)
	for range 3 {
		bag.Add(diag.NewError(diag.LexUnterminatedString, diag.Location{File: fileID, Line: 1, Column: 1}, "unterminated"))
	}

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: -1})
	if !strings.HasSuffix(buf.String(), "... 2 more diagnostics not shown\n") {
		t.Errorf("missing dropped summary:\n%s", buf.String())
	}
}
