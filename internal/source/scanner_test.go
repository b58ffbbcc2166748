package source_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lexkit/internal/chars"
	"lexkit/internal/source"
)

const scannerContent = "Test String\n  Just for test\r\n Again."

func expectRead(t *testing.T, sc *source.Scanner, want rune, line, column int) {
	t.Helper()
	got := sc.Read()
	if got != want {
		t.Fatalf("Read() = %q, want %q", got, want)
	}
	if sc.Line() != line || sc.Column() != column {
		t.Fatalf("after %q: position %d:%d, want %d:%d", want, sc.Line(), sc.Column(), line, column)
	}
}

func TestScannerReadUnread(t *testing.T) {
	sc := source.NewScanner(scannerContent)

	if sc.Peek() != 'T' {
		t.Fatalf("Peek() = %q, want 'T'", sc.Peek())
	}
	expectRead(t, sc, 'T', 1, 1)
	expectRead(t, sc, 'e', 1, 2)
	sc.Unread()
	if sc.Line() != 1 || sc.Column() != 1 {
		t.Fatalf("after Unread: %d:%d, want 1:1", sc.Line(), sc.Column())
	}
	expectRead(t, sc, 'e', 1, 2)

	sc.UnreadMany(2)
	expectRead(t, sc, 'T', 1, 1)
}

func TestScannerLineColumn(t *testing.T) {
	sc := source.NewScanner(scannerContent)

	for range 11 {
		sc.Read()
	}
	if sc.Line() != 1 || sc.Column() != 11 {
		t.Fatalf("end of first line: %d:%d, want 1:11", sc.Line(), sc.Column())
	}
	if sc.PeekLine() != 2 || sc.PeekColumn() != 0 {
		t.Fatalf("peek at LF: %d:%d, want 2:0", sc.PeekLine(), sc.PeekColumn())
	}
	expectRead(t, sc, '\n', 2, 0)
	expectRead(t, sc, ' ', 2, 1)

	// walk to the CRLF pair
	for range 14 {
		sc.Read()
	}
	if sc.Line() != 2 || sc.Column() != 15 {
		t.Fatalf("end of second line: %d:%d, want 2:15", sc.Line(), sc.Column())
	}
	// CR next to LF is not a break by itself
	expectRead(t, sc, '\r', 2, 15)
	expectRead(t, sc, '\n', 3, 0)
	expectRead(t, sc, ' ', 3, 1)

	// unreading across the line break restores the saved column
	sc.UnreadMany(2)
	if sc.Line() != 2 || sc.Column() != 15 {
		t.Fatalf("after unreading LF: %d:%d, want 2:15", sc.Line(), sc.Column())
	}
}

func TestScannerLoneCR(t *testing.T) {
	sc := source.NewScanner("a\rb\n\rc")
	expectRead(t, sc, 'a', 1, 1)
	expectRead(t, sc, '\r', 2, 0)
	expectRead(t, sc, 'b', 2, 1)
	expectRead(t, sc, '\n', 3, 0)
	expectRead(t, sc, '\r', 3, 0)
	expectRead(t, sc, 'c', 3, 1)
}

func TestScannerEOFSymmetry(t *testing.T) {
	sc := source.NewScanner("ab")
	sc.Read()
	sc.Read()
	for range 3 {
		if got := sc.Read(); got != chars.EOF {
			t.Fatalf("Read past end = %q, want EOF", got)
		}
	}
	if sc.PeekLine() != 1 || sc.PeekColumn() != 2 {
		t.Fatalf("peek at EOF: %d:%d, want 1:2", sc.PeekLine(), sc.PeekColumn())
	}
	sc.UnreadMany(3)
	if sc.Peek() != chars.EOF {
		t.Fatalf("Peek() = %q, want EOF after unreading over-reads", sc.Peek())
	}
	sc.Unread()
	if sc.Peek() != 'b' {
		t.Fatalf("Peek() = %q, want 'b'", sc.Peek())
	}
}

func TestScannerUnreadAtStart(t *testing.T) {
	sc := source.NewScanner("x")
	sc.Unread()
	sc.UnreadMany(4)
	if sc.Offset() != -1 || sc.Line() != 1 || sc.Column() != 0 {
		t.Fatalf("unread at start moved the cursor: off=%d %d:%d", sc.Offset(), sc.Line(), sc.Column())
	}
	expectRead(t, sc, 'x', 1, 1)
}

// Every prefix of reads followed by the same number of unreads returns to the start.
func TestScannerRoundTrip(t *testing.T) {
	inputs := []string{"", "abc", "a\r\nb\n\rc\rd", "\n\n\n", "é\tü"}
	for _, in := range inputs {
		sc := source.NewScanner(in)
		for n := 0; n <= len([]rune(in))+2; n++ {
			sc.Reset()
			for range n {
				sc.Read()
			}
			sc.UnreadMany(n)
			if sc.Offset() != -1 || sc.Line() != 1 || sc.Column() != 0 {
				t.Fatalf("%q: %d reads not undone: off=%d %d:%d", in, n, sc.Offset(), sc.Line(), sc.Column())
			}
		}
	}
}

func TestFileSetLoadStripsBOM(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mem.txt", []byte("x\ny"))
	f := fs.Get(id)
	if f.GetLine(2) != "y" {
		t.Fatalf("GetLine(2) = %q", f.GetLine(2))
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Fatalf("virtual flag not set")
	}
	if got, ok := fs.GetLatest("mem.txt"); !ok || got != id {
		t.Fatalf("GetLatest = %v, %v", got, ok)
	}
}

func TestScannerLineColumnFixture(t *testing.T) {
	cases := []struct {
		position     int
		char         rune
		line, column int
	}{
		{11, 'g', 1, 11},
		{12, '\n', 2, 0},
		{13, ' ', 2, 1},
		{28, '\r', 2, 15},
		{29, '\n', 3, 0},
		{30, ' ', 3, 1},
		{36, '.', 3, 7},
		{37, chars.EOF, 3, 7},
	}

	sc := source.NewScanner(scannerContent)
	for _, tc := range cases {
		sc.Reset()
		for p := tc.position; p > 1; p-- {
			sc.Read()
		}

		expectRead(t, sc, tc.char, tc.line, tc.column)

		// step back over the character and read it again
		if sc.Read() != chars.EOF {
			sc.Unread()
		}
		sc.Unread()
		expectRead(t, sc, tc.char, tc.line, tc.column)
	}
}

func TestFileLinesFollowScannerBreaks(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b", ""}},
		{"a\rb", []string{"a", "b"}},
		{"a\n\rb", []string{"a", "b"}},
		{"a\n\r\nb", []string{"a", "", "b"}},
		{"\r\r", []string{"", "", ""}},
	}
	for _, tt := range tests {
		fs := source.NewFileSet()
		f := fs.Get(fs.AddVirtual("lines", []byte(tt.in)))
		got := make([]string, 0, f.LineCount())
		for n := 1; n <= f.LineCount(); n++ {
			got = append(got, f.GetLine(n))
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q lines mismatch (-want +got):\n%s", tt.in, diff)
		}
		if f.GetLine(0) != "" || f.GetLine(f.LineCount()+1) != "" {
			t.Errorf("%q: out of range lines should be empty", tt.in)
		}
	}
}

func TestScannerUnreadRestoresEveryPosition(t *testing.T) {
	in := "ab\r\ncd\n\rx\ry\n\n  z\r\n"
	sc := source.NewScanner(in)
	var forward []source.Position
	for sc.Read() != chars.EOF {
		forward = append(forward, sc.Position())
	}
	sc.Unread() // the EOF read
	for i := len(forward) - 1; i >= 0; i-- {
		if got := sc.Position(); got != forward[i] {
			t.Fatalf("offset %d: got %+v, want %+v", i, got, forward[i])
		}
		sc.Unread()
	}
	if sc.Offset() != -1 || sc.Line() != 1 || sc.Column() != 0 {
		t.Fatalf("not back at start: off=%d %d:%d", sc.Offset(), sc.Line(), sc.Column())
	}
}

func TestScannerManyLinesStaysLinear(t *testing.T) {
	const lines = 200_000
	sc := source.NewScanner(strings.Repeat("word\n", lines))
	for {
		ch := sc.Read()
		if ch == chars.EOF {
			break
		}
		// every break is stepped back over once, the way word states do
		if ch == chars.LF {
			sc.Unread()
			sc.Read()
		}
	}
	sc.Unread()
	if sc.Line() != lines+1 || sc.Column() != 0 {
		t.Fatalf("end position %d:%d, want %d:0", sc.Line(), sc.Column(), lines+1)
	}
}

func BenchmarkScannerUnreadAcrossLines(b *testing.B) {
	text := strings.Repeat("word\n", 10_000)
	for b.Loop() {
		sc := source.NewScanner(text)
		for sc.Read() != chars.EOF {
			sc.Unread()
			sc.Read()
		}
	}
}
