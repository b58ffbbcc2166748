package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lexkit/internal/dialect"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, configFileName), "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := findConfig(nested)
	if err != nil || !ok {
		t.Fatalf("findConfig: ok=%v err=%v", ok, err)
	}
	want, _ := filepath.Abs(filepath.Join(root, configFileName))
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, `
[tokenizer]
dialect = "csv"
decode_strings = true
strict_quotes = true

[csv]
field_separators = [";", "|"]
quote_symbols = ["'"]

[cache]
enabled = false
memory_entries = 16
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	s, err := cfg.resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Dialect != dialect.CSV {
		t.Errorf("dialect = %v", s.Dialect)
	}
	if !s.Config.Options.DecodeStrings || !s.Config.Options.StrictQuotes || s.Config.Options.SkipEof {
		t.Errorf("options = %+v", s.Config.Options)
	}
	if diff := cmp.Diff([]rune{';', '|'}, s.Config.FieldSeparators); diff != "" {
		t.Errorf("separators (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]rune{'\''}, s.Config.QuoteSymbols); diff != "" {
		t.Errorf("quotes (-want +got):\n%s", diff)
	}
	if s.Cache.Enabled || s.Cache.MemoryEntries != 16 {
		t.Errorf("cache = %+v", s.Cache)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, "[tokenizer]\nskip_eof = true\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tokenizer.Dialect != "auto" || !cfg.Cache.Enabled || cfg.Cache.MemoryEntries != 256 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"syntax", "[tokenizer\n", "failed to parse TOML"},
		{"unknown key", "[tokenizer]\nskip_everything = true\n", "unknown keys: tokenizer.skip_everything"},
		{"bad dialect", "[tokenizer]\ndialect = \"yaml\"\n", "[tokenizer].dialect"},
		{"long separator", "[csv]\nfield_separators = [\";;\"]\n", "must be a single character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), configFileName)
			writeFile(t, path, tt.content)
			cfg, err := loadConfig(path)
			if err == nil {
				_, err = cfg.resolve(path)
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestParseSwitch(t *testing.T) {
	for in, want := range map[string]switchMode{"": switchAuto, "AUTO": switchAuto, " on ": switchOn, "off": switchOff} {
		got, err := parseSwitch("ui", in)
		if err != nil || got != want {
			t.Errorf("parseSwitch(%q) = %v, %v", in, got, err)
		}
	}
	_, err := parseSwitch("color", "sometimes")
	if err == nil || !strings.Contains(err.Error(), "--color") {
		t.Errorf("expected an error naming the flag, got %v", err)
	}
	if !switchOn.enabled(os.Stderr) || switchOff.enabled(os.Stderr) {
		t.Error("explicit modes must win")
	}
}
