package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lexkit/internal/version"
)

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// newRootCmd wires the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	var cleanup func()
	root := &cobra.Command{
		Use:           "lexkit",
		Short:         "Configurable state-machine tokenizer",
		Long:          `lexkit splits text into typed tokens using generic, expression, CSV and Mustache presets`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyColorMode(cmd); err != nil {
				return err
			}
			if _, err := readDiagnosticsFormat(cmd); err != nil {
				return err
			}
			var err error
			cleanup, err = setupTracing(cmd)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if cleanup != nil {
				cleanup()
			}
		},
	}

	// Глобальные флаги
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().String("diagnostics", "pretty", "diagnostics format on stderr (pretty|short|json)")
	root.PersistentFlags().String("config", "", "path to lexkit.toml (default: search upward from the working directory)")
	root.PersistentFlags().String("trace", "", "write trace events to a file (- for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	root.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	root.PersistentFlags().Int("trace-ring-size", 4096, "events kept by the ring tracer")

	root.AddCommand(
		newTokenizeCmd(),
		newMustacheCmd(),
		newDialectsCmd(),
		newDetectCmd(),
		newCleanCmd(),
		newVersionCmd(),
	)
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.msg != "" {
				fmt.Fprintln(os.Stderr, ee.msg)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "lexkit: %v\n", err)
		os.Exit(1)
	}
}

func applyColorMode(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	sw, err := parseSwitch("color", mode)
	if err != nil {
		return err
	}
	color.NoColor = !sw.enabled(os.Stdout)
	return nil
}

// useColor reports whether output to f should be colored under --color.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	sw, err := parseSwitch("color", mode)
	return err == nil && sw.enabled(f)
}
