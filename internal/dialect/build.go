package dialect

import (
	"fmt"

	"lexkit/internal/csv"
	"lexkit/internal/expr"
	"lexkit/internal/lexer"
	"lexkit/internal/mustache"
)

// Config carries the user-tunable settings applied on top of a preset.
type Config struct {
	Options lexer.Options

	// CSV only. Empty values keep the preset defaults.
	FieldSeparators []rune
	QuoteSymbols    []rune
	EndOfLine       string
}

// Fingerprint identifies the token output of k under c. Two runs with the
// same fingerprint and input produce the same tokens.
func (c Config) Fingerprint(k Kind) string {
	fp := fmt.Sprintf("%s|%+v", k, c.Options)
	if k == CSV {
		fp += fmt.Sprintf("|%q|%q|%q", string(c.FieldSeparators), string(c.QuoteSymbols), c.EndOfLine)
	}
	return fp
}

// Tokenizer is the common surface of every preset.
type Tokenizer interface {
	lexer.BufferTokenizer
	TokenizeBufferToStrings(text string) ([]string, error)
}

// Build returns a configured tokenizer for k. The result is read-only and
// may be shared by concurrent scans.
func Build(k Kind, cfg Config) (Tokenizer, error) {
	switch k {
	case Generic:
		tz := lexer.NewGeneric()
		tz.Options = cfg.Options
		return tz, nil

	case Expression:
		tz := expr.NewTokenizer()
		tz.Options = cfg.Options
		return tz, nil

	case CSV:
		tz := csv.NewTokenizer()
		tz.Options = cfg.Options
		if len(cfg.QuoteSymbols) > 0 {
			if err := tz.SetQuoteSymbols(cfg.QuoteSymbols...); err != nil {
				return nil, err
			}
		}
		if len(cfg.FieldSeparators) > 0 {
			if err := tz.SetFieldSeparators(cfg.FieldSeparators...); err != nil {
				return nil, err
			}
		}
		if cfg.EndOfLine != "" {
			tz.SetEndOfLine(cfg.EndOfLine)
		}
		return tz, nil

	case Mustache:
		tz := mustache.NewTokenizer()
		opts := cfg.Options
		// template comments and the trailing Eof are always dropped
		opts.SkipComments = true
		opts.SkipEof = true
		tz.Options = opts
		return tz, nil
	}
	return nil, fmt.Errorf("no tokenizer for dialect %s", k)
}
