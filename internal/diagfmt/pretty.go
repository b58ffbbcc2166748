package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lexkit/internal/diag"
	"lexkit/internal/source"
)

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	return f.FormatPath(mode.String(), fs.BaseDir())
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func paint(c *color.Color, enabled bool) *color.Color {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой диагностики печатает
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с кареткой под колонкой, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, &d, fs, opts)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... %d more diagnostics not shown\n", n)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := paint(severityColor(d.Severity), opts.Color)
	bold := paint(color.New(color.Bold), opts.Color)

	f := fs.Get(d.Primary.File)
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		bold.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), d.Primary.Line, d.Primary.Column),
		sev.Sprint(d.Severity.String()),
		d.Code.ID(),
		d.Message)

	if opts.Context >= 0 {
		writeContext(w, f, d.Primary, int(opts.Context), sev)
	}

	if !opts.ShowNotes {
		return
	}
	note := paint(color.New(color.FgCyan), opts.Color)
	for _, n := range d.Notes {
		nf := fs.Get(n.Loc.File)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", note.Sprint("note:"),
			formatPath(nf, fs, opts.PathMode), n.Loc.Line, n.Loc.Column, n.Msg)
	}
}

// writeContext prints the primary line with up to ctx lines around it and a
// caret under the column. The caret offset uses display width so wide
// characters line up.
func writeContext(w io.Writer, f *source.File, loc diag.Location, ctx int, caret *color.Color) {
	if loc.Line <= 0 {
		return
	}
	first := max(loc.Line-ctx, 1)
	last := min(loc.Line+ctx, f.LineCount())
	gutter := len(fmt.Sprint(last))

	for n := first; n <= last; n++ {
		text := strings.ReplaceAll(f.GetLine(n), "\t", "    ")
		fmt.Fprintf(w, " %*d | %s\n", gutter, n, text)
		if n != loc.Line {
			continue
		}
		prefix := columnPrefix(f.GetLine(n), loc.Column)
		pad := runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", "    "))
		fmt.Fprintf(w, " %*s | %s%s\n", gutter, "", strings.Repeat(" ", pad), caret.Sprint("^"))
	}
}

// columnPrefix returns the text before the 1-based column.
func columnPrefix(line string, column int) string {
	runes := []rune(line)
	n := min(max(column-1, 0), len(runes))
	return string(runes[:n])
}
