package diagfmt

import (
	"encoding/json"
	"io"

	"lexkit/internal/diag"
	"lexkit/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
	// Dropped counts diagnostics cut by the bag limit or opts.Max.
	Dropped int `json:"dropped,omitempty"`
}

func makeLocation(loc diag.Location, fs *source.FileSet, mode PathMode) LocationJSON {
	return LocationJSON{
		File:   formatPath(fs.Get(loc.File), fs, mode),
		Line:   loc.Line,
		Column: loc.Column,
	}
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	dropped := bag.Dropped()
	if opts.Max > 0 && opts.Max < len(items) {
		dropped += len(items) - opts.Max
		items = items[:opts.Max]
	}

	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(items)), Dropped: dropped}
	for _, d := range items {
		switch d.Severity {
		case diag.SevError:
			out.Errors++
		case diag.SevWarning:
			out.Warnings++
		}
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{Message: n.Msg, Location: makeLocation(n.Loc, fs, opts.PathMode)})
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes the diagnostics of bag as an indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
