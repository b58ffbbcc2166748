package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lexkit/internal/driver"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove cached token lists",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}
}

func runClean(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	dir := s.Cache.Dir
	if dir == "" {
		if dir, err = driver.DefaultCacheDir("lexkit"); err != nil {
			return fmt.Errorf("resolve cache directory: %w", err)
		}
	}
	out := cmd.OutOrStdout()
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(out, "cache directory not found")
			return nil
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}
	disk, err := driver.OpenDiskCache(dir)
	if err != nil {
		return err
	}
	if err := disk.DropAll(); err != nil {
		return fmt.Errorf("failed to clean %q: %w", dir, err)
	}
	fmt.Fprintf(out, "removed cached tokens in %s\n", dir)
	return nil
}
