package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"lexkit/internal/dialect"
	"lexkit/internal/lexer"
)

const configFileName = "lexkit.toml"

type fileConfig struct {
	Tokenizer tokenizerConfig `toml:"tokenizer"`
	CSV       csvConfig       `toml:"csv"`
	Cache     cacheConfig     `toml:"cache"`
}

type tokenizerConfig struct {
	Dialect          string `toml:"dialect"`
	DecodeStrings    bool   `toml:"decode_strings"`
	SkipEof          bool   `toml:"skip_eof"`
	SkipUnknown      bool   `toml:"skip_unknown"`
	SkipComments     bool   `toml:"skip_comments"`
	SkipWhitespaces  bool   `toml:"skip_whitespaces"`
	MergeWhitespaces bool   `toml:"merge_whitespaces"`
	UnifyNumbers     bool   `toml:"unify_numbers"`
	StrictQuotes     bool   `toml:"strict_quotes"`
}

type csvConfig struct {
	FieldSeparators []string `toml:"field_separators"`
	QuoteSymbols    []string `toml:"quote_symbols"`
	EndOfLine       string   `toml:"end_of_line"`
}

type cacheConfig struct {
	Enabled       bool   `toml:"enabled"`
	Dir           string `toml:"dir"`
	MemoryEntries int    `toml:"memory_entries"`
}

// settings is the resolved configuration for one command run.
type settings struct {
	Path    string // config file, empty when none was found
	Dialect dialect.Kind
	Config  dialect.Config
	Cache   cacheConfig
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Tokenizer: tokenizerConfig{Dialect: "auto"},
		Cache:     cacheConfig{Enabled: true, MemoryEntries: 256},
	}
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig decodes path over the defaults. Unknown keys are rejected.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (c fileConfig) resolve(path string) (settings, error) {
	kind, err := dialect.Parse(c.Tokenizer.Dialect)
	if err != nil {
		return settings{}, fmt.Errorf("%s: [tokenizer].dialect: %w", path, err)
	}
	seps, err := singleRunes("field_separators", c.CSV.FieldSeparators)
	if err != nil {
		return settings{}, fmt.Errorf("%s: [csv].%w", path, err)
	}
	quotes, err := singleRunes("quote_symbols", c.CSV.QuoteSymbols)
	if err != nil {
		return settings{}, fmt.Errorf("%s: [csv].%w", path, err)
	}
	t := c.Tokenizer
	return settings{
		Path:    path,
		Dialect: kind,
		Config: dialect.Config{
			Options: lexer.Options{
				SkipUnknown:      t.SkipUnknown,
				SkipWhitespaces:  t.SkipWhitespaces,
				SkipComments:     t.SkipComments,
				SkipEof:          t.SkipEof,
				MergeWhitespaces: t.MergeWhitespaces,
				UnifyNumbers:     t.UnifyNumbers,
				DecodeStrings:    t.DecodeStrings,
				StrictQuotes:     t.StrictQuotes,
			},
			FieldSeparators: seps,
			QuoteSymbols:    quotes,
			EndOfLine:       c.CSV.EndOfLine,
		},
		Cache: c.Cache,
	}, nil
}

func singleRunes(key string, values []string) ([]rune, error) {
	out := make([]rune, 0, len(values))
	for _, v := range values {
		r := []rune(v)
		if len(r) != 1 {
			return nil, fmt.Errorf("%s: %q must be a single character", key, v)
		}
		out = append(out, r[0])
	}
	return out, nil
}

// loadSettings reads --config or the nearest lexkit.toml. Without a file the
// defaults apply.
func loadSettings(cmd *cobra.Command) (settings, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, err := findConfig(".")
		if err != nil {
			return settings{}, err
		}
		if !ok {
			return defaultFileConfig().resolve("")
		}
		path = found
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return settings{}, err
	}
	return cfg.resolve(path)
}
