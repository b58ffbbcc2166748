package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lexkit/internal/diagfmt"
	"lexkit/internal/driver"
	"lexkit/internal/observ"
)

func newMustacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mustache [flags] <file>",
		Short: "Parse a Mustache template into its directive tree",
		Args:  cobra.ExactArgs(1),
		RunE:  runMustache,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json)")
	cmd.Flags().Bool("vars", false, "print only the referenced variable names")
	return cmd
}

func runMustache(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	varsOnly, _ := cmd.Flags().GetBool("vars")

	var opts driver.Options
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if showTimings {
		opts.Timer = observ.NewTimer()
	}

	res, err := driver.ParseTemplate(cmd.Context(), path, opts)
	if err != nil {
		return err
	}
	if err := printDiagnostics(cmd, cmd.ErrOrStderr(), res.Bag, res.FileSet, useColor(cmd, os.Stderr)); err != nil {
		return err
	}
	if res.Doc == nil {
		dumpTraceRing(cmd)
		return &exitError{code: 2}
	}

	out := cmd.OutOrStdout()
	switch {
	case format == "json":
		err = diagfmt.FormatDirectiveJSON(out, path, res.Doc)
	case varsOnly:
		for _, name := range res.Doc.Variables {
			if _, err = fmt.Fprintln(out, name); err != nil {
				break
			}
		}
	default:
		err = diagfmt.FormatDirectiveTree(out, res.Doc.Tree, useColor(cmd, os.Stdout))
	}
	if err != nil {
		return err
	}
	if showTimings {
		printTimings(os.Stderr, opts.Timer)
	}
	return nil
}
