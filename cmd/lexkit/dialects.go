package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lexkit/internal/dialect"
	"lexkit/internal/driver"
	"lexkit/internal/source"
)

func newDialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List tokenizer presets and the extensions they are detected from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, info := range dialect.All() {
				exts := strings.Join(info.Extensions, " ")
				if exts == "" {
					exts = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Kind, exts, info.Description)
			}
			return tw.Flush()
		},
	}
}

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [flags] <file|directory>",
		Short: "Show which dialect would be used for each file and why",
		Args:  cobra.ExactArgs(1),
		RunE:  runDetect,
	}
	cmd.Flags().Bool("hints", false, "list the evidence behind content-based decisions")
	return cmd
}

func runDetect(cmd *cobra.Command, args []string) error {
	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}
	files := []string{args[0]}
	if info.IsDir() {
		if files, err = driver.ListFiles(args[0]); err != nil {
			return err
		}
	}
	showHints, _ := cmd.Flags().GetBool("hints")
	name := color.New(color.Bold)
	if !useColor(cmd, os.Stdout) {
		name.DisableColor()
	}

	out := cmd.OutOrStdout()
	fs := source.NewFileSet()
	for _, path := range files {
		id, err := fs.Load(path, source.LoadOptions{})
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			continue
		}
		det := dialect.Detect(path, fs.Get(id).Text())
		switch {
		case det.ByExtension:
			fmt.Fprintf(out, "%s: %s (extension)\n", path, name.Sprint(det.Kind))
		default:
			cls := det.Classification
			fmt.Fprintf(out, "%s: %s (content: %s score %d, confidence %.2f)\n",
				path, name.Sprint(det.Kind), cls.Kind, cls.Score, cls.Confidence)
		}
		if !showHints {
			continue
		}
		for _, g := range dialect.GroupHints(det.Hints) {
			fmt.Fprintf(out, "  %-10s +%-4d %s x%d (first at %d:%d)\n",
				g.Dialect, g.Score, g.Reason, g.Count, g.First.Line, g.First.Column)
		}
	}
	return nil
}
