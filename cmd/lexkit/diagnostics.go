package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lexkit/internal/diag"
	"lexkit/internal/diagfmt"
	"lexkit/internal/source"
)

func readDiagnosticsFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Root().PersistentFlags().GetString("diagnostics")
	if err != nil {
		return "", fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
		return format, nil
	}
	return "", fmt.Errorf("invalid --diagnostics value %q (expected pretty|short|json)", format)
}

// printDiagnostics writes bag to w in the --diagnostics format. With --quiet
// only runs that have errors report anything.
func printDiagnostics(cmd *cobra.Command, w io.Writer, bag *diag.Bag, fs *source.FileSet, color bool) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); quiet && !bag.HasErrors() {
		return nil
	}
	format, err := readDiagnosticsFormat(cmd)
	if err != nil {
		return err
	}
	switch format {
	case "short":
		_, err = fmt.Fprintln(w, diag.FormatShortDiagnostics(bag.Items(), fs, true))
	case "json":
		err = diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{PathMode: diagfmt.PathModeRelative, IncludeNotes: true})
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{Color: color, Context: 1, ShowNotes: true})
	}
	return err
}
