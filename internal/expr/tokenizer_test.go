package expr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"lexkit/internal/expr"
	"lexkit/internal/lexer"
	"lexkit/internal/token"
)

type tok struct {
	Type  token.Type
	Value string
}

func tokenize(t *testing.T, tz *lexer.Tokenizer, input string) []tok {
	t.Helper()
	tokens, err := tz.TokenizeBuffer(input)
	if err != nil {
		t.Fatalf("TokenizeBuffer(%q): %v", input, err)
	}
	out := make([]tok, len(tokens))
	for i, tk := range tokens {
		out[i] = tok{tk.Type, tk.Value}
	}
	return out
}

func newDecoding() *lexer.Tokenizer {
	tz := expr.NewTokenizer()
	tz.Options.SkipEof = true
	tz.Options.DecodeStrings = true
	return tz
}

func TestQuoteToken(t *testing.T) {
	got := tokenize(t, newDecoding(), "A'xyz'\"abc\ndeg\" 'jkl\"def'\"ab\"\"de\"'df''er'")
	want := []tok{
		{token.Word, "A"},
		{token.Quoted, "xyz"},
		{token.Word, "abc\ndeg"},
		{token.Whitespace, " "},
		{token.Quoted, "jkl\"def"},
		{token.Word, "ab\"de"},
		{token.Quoted, "df'er"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestWordToken(t *testing.T) {
	got := tokenize(t, newDecoding(), "A'xyz'Ebf_2\n2_2")
	want := []tok{
		{token.Word, "A"},
		{token.Quoted, "xyz"},
		{token.Word, "Ebf_2"},
		{token.Whitespace, "\n"},
		{token.Integer, "2"},
		{token.Word, "_2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestNumberToken(t *testing.T) {
	got := tokenize(t, newDecoding(), "123-321 .543-.76-. 123.456 123e45 543.11E+43 1e 3E-")
	want := []tok{
		{token.Integer, "123"}, {token.Symbol, "-"},
		{token.Integer, "321"}, {token.Whitespace, " "},
		{token.Float, ".543"}, {token.Symbol, "-"},
		{token.Float, ".76"}, {token.Symbol, "-"},
		{token.Symbol, "."}, {token.Whitespace, " "},
		{token.Float, "123.456"}, {token.Whitespace, " "},
		{token.Float, "123e45"}, {token.Whitespace, " "},
		{token.Float, "543.11E+43"}, {token.Whitespace, " "},
		{token.Integer, "1"}, {token.Word, "e"},
		{token.Whitespace, " "}, {token.Integer, "3"},
		{token.Word, "E"}, {token.Symbol, "-"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestScientificRollback(t *testing.T) {
	cases := []struct {
		input string
		want  []tok
	}{
		{"123e5#", []tok{{token.Float, "123e5"}, {token.Symbol, "#"}}},
		{"123e#", []tok{{token.Integer, "123"}, {token.Word, "e"}, {token.Symbol, "#"}}},
		{"1.5E-3", []tok{{token.Float, "1.5E-3"}}},
		{"2e+", []tok{{token.Integer, "2"}, {token.Word, "e"}, {token.Symbol, "+"}}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, tokenize(t, newDecoding(), tc.input)); diff != "" {
			t.Fatalf("%q (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestExpressionTokenCount(t *testing.T) {
	got := tokenize(t, expr.NewTokenizer(), "A + b / (3 - Max(-123, 1)*2)")
	if len(got) != 25 {
		t.Fatalf("expected 25 tokens, got %d: %v", len(got), got)
	}
}

func TestKeywords(t *testing.T) {
	tz := expr.NewTokenizer()
	tz.Options.SkipEof = true
	tz.Options.SkipWhitespaces = true
	got := tokenize(t, tz, "a And not Nullable IS null")
	want := []tok{
		{token.Word, "a"},
		{token.Keyword, "And"},
		{token.Keyword, "not"},
		{token.Word, "Nullable"},
		{token.Keyword, "IS"},
		{token.Keyword, "null"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestOperatorsAndComments(t *testing.T) {
	tz := expr.NewTokenizer()
	tz.Options.SkipEof = true
	got := tokenize(t, tz, "a<>b!=c<<2/d// end")
	want := []tok{
		{token.Word, "a"}, {token.Symbol, "<>"},
		{token.Word, "b"}, {token.Symbol, "!="},
		{token.Word, "c"}, {token.Symbol, "<<"},
		{token.Integer, "2"}, {token.Symbol, "/"},
		{token.Word, "d"}, {token.Comment, "// end"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestIsKeyword(t *testing.T) {
	for _, w := range []string{"and", "Or", "XOR", "like", "In", "true", "FALSE"} {
		if !expr.IsKeyword(w) {
			t.Errorf("%q should be a keyword", w)
		}
	}
	for _, w := range []string{"andy", "", "_in"} {
		if expr.IsKeyword(w) {
			t.Errorf("%q should not be a keyword", w)
		}
	}
}

func TestAstralCharacters(t *testing.T) {
	tz := expr.NewTokenizer()
	tz.Options.SkipEof = true
	want := []tok{
		{token.Word, "x😀y"},
		{token.Whitespace, " "},
		{token.Symbol, "😀"},
	}
	if diff := cmp.Diff(want, tokenize(t, tz, "x😀y 😀")); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
