package chars

import (
	"errors"
	"testing"
)

func TestMapLastWriteWins(t *testing.T) {
	m := NewMap[string]()
	mustSet(t, m, 0, 0xfffe, "symbol")
	mustSet(t, m, 'a', 'z', "word")
	mustSet(t, m, 0x100, 0xfffe, "word")
	mustSet(t, m, 0x2022, 0x2022, "sep")

	cases := []struct {
		r    rune
		want string
	}{
		{'+', "symbol"},
		{'a', "word"},
		{'z', "word"},
		{0xff, "symbol"},
		{0x100, "word"},
		{0x2022, "sep"},
		{0x2023, "word"},
		{0x1f600, ""},
		{EOF, ""},
	}
	for _, tc := range cases {
		if got := m.Lookup(tc.r); got != tc.want {
			t.Errorf("Lookup(%#x) = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestMapSetRejectsBadRanges(t *testing.T) {
	m := NewMap[bool]()
	for _, rg := range [][2]rune{{'z', 'a'}, {-1, 5}, {0, 0x110000}} {
		if err := m.Set(rg[0], rg[1], true); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Set(%#x, %#x) err = %v, want ErrInvalidRange", rg[0], rg[1], err)
		}
	}
}

func TestMapClear(t *testing.T) {
	m := NewMap[bool]()
	mustSet(t, m, 0, 0x10000, true)
	m.Clear()
	if m.Lookup('a') || m.Lookup(0x5000) {
		t.Fatal("expected empty map after Clear")
	}
}

func TestValidators(t *testing.T) {
	if !IsEOF(EOF) || IsEOF('a') {
		t.Error("IsEOF mismatch")
	}
	if !IsEOL('\n') || !IsEOL('\r') || IsEOL(' ') {
		t.Error("IsEOL mismatch")
	}
	if !IsDigit('0') || !IsDigit('9') || IsDigit('a') || IsDigit(EOF) {
		t.Error("IsDigit mismatch")
	}
	if !IsWhitespace('\t') || !IsWhitespace(' ') || IsWhitespace('!') || IsWhitespace(EOF) {
		t.Error("IsWhitespace mismatch")
	}
}

func mustSet[T any](t *testing.T, m *Map[T], from, to rune, ref T) {
	t.Helper()
	if err := m.Set(from, to, ref); err != nil {
		t.Fatalf("Set(%#x, %#x): %v", from, to, err)
	}
}
