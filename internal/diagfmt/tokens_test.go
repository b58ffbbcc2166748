package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lexkit/internal/mustache"
	"lexkit/internal/token"
)

var sampleTokens = []token.Token{
	token.New(token.Word, "A", 1, 1),
	token.New(token.Symbol, "+", 1, 2),
	token.New(token.Quoted, "'x y'", 1, 3),
	token.New(token.Eof, "", 1, 8),
}

func TestFormatTokensPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, sampleTokens, TokenOpts{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if want := "    1  1:1       Word       \"A\""; lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
	if !strings.HasSuffix(lines[3], `Eof        ""`) {
		t.Errorf("unexpected Eof line %q", lines[3])
	}
}

func TestQuoteValueTruncates(t *testing.T) {
	if got := quoteValue("abcdefgh", 6); got != `"ab...` {
		t.Errorf("quoteValue = %q", got)
	}
	if got := quoteValue("ab", 0); got != `"ab"` {
		t.Errorf("quoteValue = %q", got)
	}
	if got := quoteValue("漢字漢字", 7); got != `"漢...` {
		t.Errorf("wide quoteValue = %q", got)
	}
}

func TestTokensJSONShape(t *testing.T) {
	var buf bytes.Buffer
	files := []FileTokens{{Path: "a.txt", Dialect: "generic", Tokens: sampleTokens[:1]}}
	if err := FormatTokensJSON(&buf, files); err != nil {
		t.Fatal(err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	tok := raw[0]["tokens"].([]any)[0].(map[string]any)
	want := map[string]any{"type": "Word", "value": "A", "line": float64(1), "column": float64(1)}
	if diff := cmp.Diff(want, tok); diff != "" {
		t.Fatalf("token JSON (-want +got):\n%s", diff)
	}
}

func TestTokensMsgpackRoundTrip(t *testing.T) {
	files := []FileTokens{
		{Path: "a.txt", Dialect: "generic", Tokens: sampleTokens},
		{Path: "b.csv", Dialect: "csv", Cached: true, Tokens: []token.Token{token.New(token.Eol, "\n", 1, 0)}},
	}
	var buf bytes.Buffer
	if err := FormatTokensMsgpack(&buf, files); err != nil {
		t.Fatal(err)
	}
	got, err := ReadTokensMsgpack(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(files, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFormatDirectiveTree(t *testing.T) {
	doc, err := mustache.Parse("Hi {{#items}}- {{name}}{{/items}}")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatDirectiveTree(&buf, doc.Tree, false); err != nil {
		t.Fatal(err)
	}
	want := "Value \"Hi \" @1:1\n" +
		"Section \"items\" @1:4\n" +
		"  Value \"- \" @1:14\n" +
		"  Variable \"name\" @1:16\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := FormatDirectiveJSON(&buf, "t.mustache", doc); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"variables": [`) || !strings.Contains(buf.String(), `"type": "Section"`) {
		t.Fatalf("unexpected JSON:\n%s", buf.String())
	}
}
