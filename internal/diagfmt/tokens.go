package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"lexkit/internal/token"
)

// FileTokens is the serialized result for one input file.
type FileTokens struct {
	Path    string        `json:"path" msgpack:"path"`
	Dialect string        `json:"dialect" msgpack:"dialect"`
	Cached  bool          `json:"cached,omitempty" msgpack:"cached,omitempty"`
	Error   string        `json:"error,omitempty" msgpack:"error,omitempty"`
	Tokens  []token.Token `json:"tokens" msgpack:"tokens"`
}

func typeColor(t token.Type) *color.Color {
	switch t {
	case token.Word:
		return color.New(color.FgCyan)
	case token.Keyword:
		return color.New(color.FgCyan, color.Bold)
	case token.Integer, token.Float, token.Number:
		return color.New(color.FgYellow)
	case token.Quoted:
		return color.New(color.FgGreen)
	case token.Comment:
		return color.New(color.FgHiBlack)
	case token.Symbol:
		return color.New(color.FgMagenta)
	case token.Special:
		return color.New(color.FgBlue)
	case token.Unknown:
		return color.New(color.FgRed, color.Bold)
	case token.Eof, token.Eol:
		return color.New(color.FgHiBlue)
	default:
		return color.New(color.Reset)
	}
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
// номер, позиция, тип и значение в кавычках.
func FormatTokensPretty(w io.Writer, tokens []token.Token, opts TokenOpts) error {
	for i, tok := range tokens {
		typ := paint(typeColor(tok.Type), opts.Color)
		pos := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
		// pad before coloring so escape codes do not break alignment
		name := fmt.Sprintf("%-10s", tok.Type.String())
		if _, err := fmt.Fprintf(w, "%5d  %-9s %s %s\n", i+1, pos, typ.Sprint(name), quoteValue(tok.Value, opts.Width)); err != nil {
			return err
		}
	}
	return nil
}

// quoteValue quotes v and truncates it to width display cells.
func quoteValue(v string, width int) string {
	q := strconv.Quote(v)
	if width <= 0 || runewidth.StringWidth(q) <= width {
		return q
	}
	if width <= 3 {
		return runewidth.Truncate(q, width, "")
	}
	return runewidth.Truncate(q, width, "...")
}

// FormatTokensJSON выводит результаты в JSON формате.
func FormatTokensJSON(w io.Writer, files []FileTokens) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(files)
}

// FormatTokensMsgpack writes the results as a single msgpack array.
func FormatTokensMsgpack(w io.Writer, files []FileTokens) error {
	return msgpack.NewEncoder(w).Encode(files)
}

// ReadTokensMsgpack decodes output written by FormatTokensMsgpack.
func ReadTokensMsgpack(r io.Reader) ([]FileTokens, error) {
	var files []FileTokens
	if err := msgpack.NewDecoder(r).Decode(&files); err != nil {
		return nil, err
	}
	return files, nil
}
