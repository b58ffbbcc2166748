package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lexkit/internal/diagfmt"
	"lexkit/internal/dialect"
	"lexkit/internal/driver"
	"lexkit/internal/observ"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file|directory>",
		Short: "Tokenize a file or every file in a directory",
		Long: `Tokenize splits input into typed tokens. Directories are processed in parallel
and printed in sorted path order. The dialect is detected per file unless --dialect is set.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokenize,
	}
	cmd.Flags().String("dialect", "auto", "tokenizer preset (auto|generic|expression|csv|mustache)")
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	cmd.Flags().Bool("decode", false, "decode quoted values")
	cmd.Flags().Bool("skip-eof", false, "omit the trailing Eof token")
	cmd.Flags().Bool("strict-quotes", false, "fail on unterminated quotes")
	cmd.Flags().Bool("no-cache", false, "disable the token cache")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
	cmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	cmd.Flags().Int("width", 60, "truncate pretty token values to this display width (0=off)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, err := tokenizeOptions(cmd)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if showTimings {
		opts.Timer = observ.NewTimer()
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := parseSwitch("ui", uiFlag)
	if err != nil {
		return err
	}

	result, err := tokenizeWithMode(cmd.Context(), path, opts, mode, quiet)
	if err != nil {
		dumpTraceRing(cmd)
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if err := printDiagnostics(cmd, cmd.ErrOrStderr(), result.Bag, result.FileSet, useColor(cmd, os.Stderr)); err != nil {
		return err
	}

	if err := writeTokens(cmd, cmd.OutOrStdout(), format, result); err != nil {
		return err
	}
	if showTimings {
		printTimings(os.Stderr, opts.Timer)
		if opts.Cache != nil {
			hits, misses := opts.Cache.Stats()
			fmt.Fprintf(os.Stderr, "cache %d hit(s), %d miss(es)\n", hits, misses)
		}
	}

	if result.Failed() {
		dumpTraceRing(cmd)
		return &exitError{code: 2}
	}
	return nil
}

// tokenizeOptions merges lexkit.toml with the command flags.
func tokenizeOptions(cmd *cobra.Command) (driver.Options, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return driver.Options{}, err
	}
	flags := cmd.Flags()

	if flags.Changed("dialect") {
		name, _ := flags.GetString("dialect")
		if s.Dialect, err = dialect.Parse(name); err != nil {
			return driver.Options{}, err
		}
	}
	if flags.Changed("decode") {
		s.Config.Options.DecodeStrings, _ = flags.GetBool("decode")
	}
	if flags.Changed("skip-eof") {
		s.Config.Options.SkipEof, _ = flags.GetBool("skip-eof")
	}
	if flags.Changed("strict-quotes") {
		s.Config.Options.StrictQuotes, _ = flags.GetBool("strict-quotes")
	}
	jobs, _ := flags.GetInt("jobs")

	opts := driver.Options{
		Dialect: s.Dialect,
		Config:  s.Config,
		Jobs:    jobs,
	}
	if noCache, _ := flags.GetBool("no-cache"); noCache || !s.Cache.Enabled {
		return opts, nil
	}
	if opts.Cache, err = openCache(s.Cache); err != nil {
		return driver.Options{}, err
	}
	return opts, nil
}

// openCache builds the memory cache and, when a directory is available, the
// disk cache behind it.
func openCache(cfg cacheConfig) (*driver.Cache, error) {
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = driver.DefaultCacheDir("lexkit"); err != nil {
			return driver.NewCache(cfg.MemoryEntries, nil)
		}
	}
	disk, err := driver.OpenDiskCache(dir)
	if err != nil {
		return nil, err
	}
	return driver.NewCache(cfg.MemoryEntries, disk)
}

// tokenizeWithMode shows the progress view only for directories, and only
// when it is not silenced by --quiet. The view renders on stderr.
func tokenizeWithMode(ctx context.Context, path string, opts driver.Options, mode switchMode, quiet bool) (*driver.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() || quiet || !mode.enabled(os.Stderr) {
		return driver.TokenizePath(ctx, path, opts)
	}
	files, err := driver.ListFiles(path)
	if err != nil {
		return nil, err
	}
	return runTokenizeWithUI(ctx, "tokenize "+path, files, path, opts)
}

func writeTokens(cmd *cobra.Command, out io.Writer, format string, result *driver.Result) error {
	if format != "pretty" {
		files := make([]diagfmt.FileTokens, len(result.Files))
		for i, f := range result.Files {
			files[i] = diagfmt.FileTokens{
				Path:    f.Path,
				Dialect: f.Dialect.String(),
				Cached:  f.Cached,
				Tokens:  f.Tokens,
			}
			if f.Err != nil {
				files[i].Error = f.Err.Error()
			}
		}
		if format == "json" {
			return diagfmt.FormatTokensJSON(out, files)
		}
		return diagfmt.FormatTokensMsgpack(out, files)
	}

	width, _ := cmd.Flags().GetInt("width")
	opts := diagfmt.TokenOpts{Color: useColor(cmd, os.Stdout), Width: width}
	multi := len(result.Files) > 1
	for i, f := range result.Files {
		if f.Err != nil {
			continue
		}
		if multi {
			if i > 0 {
				fmt.Fprintln(out)
			}
			cached := ""
			if f.Cached {
				cached = ", cached"
			}
			fmt.Fprintf(out, "==> %s (%s%s)\n", f.Path, f.Dialect, cached)
		}
		if err := diagfmt.FormatTokensPretty(out, f.Tokens, opts); err != nil {
			return err
		}
	}
	return nil
}
