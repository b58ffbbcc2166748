package token_test

import (
	"encoding/json"
	"testing"

	"lexkit/internal/token"
)

func TestTypeStringRoundTrip(t *testing.T) {
	for typ := token.Unknown; typ <= token.Special; typ++ {
		got, err := token.ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q): %v", typ.String(), err)
		}
		if got != typ {
			t.Fatalf("ParseType(%q) = %v, want %v", typ.String(), got, typ)
		}
	}
	if _, err := token.ParseType("Nope"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func TestEqualIgnoresPosition(t *testing.T) {
	a := token.New(token.Word, "abc", 1, 1)
	b := token.New(token.Word, "abc", 7, 3)
	if !a.Equal(b) {
		t.Fatal("tokens with same type and value must be equal")
	}
	if a.Equal(token.New(token.Quoted, "abc", 1, 1)) {
		t.Fatal("tokens with different types must differ")
	}
}

func TestJSONUsesTypeName(t *testing.T) {
	data, err := json.Marshal(token.New(token.Float, "1.5", 2, 4))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"Float","value":"1.5","line":2,"column":4}`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
	var back token.Token
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != token.New(token.Float, "1.5", 2, 4) {
		t.Fatalf("round trip mismatch: %v", back)
	}
}

func TestIsNumeric(t *testing.T) {
	for _, typ := range []token.Type{token.Integer, token.Float, token.Number} {
		if !typ.IsNumeric() {
			t.Errorf("%v should be numeric", typ)
		}
	}
	if token.Word.IsNumeric() {
		t.Error("Word must not be numeric")
	}
}
