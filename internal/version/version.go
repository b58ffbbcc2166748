package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the lexkit CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// String renders the version with whatever build metadata is set,
// e.g. "0.1.0-dev (abc1234, 2026-01-02)".
func String() string {
	var meta []string
	if GitCommit != "" {
		commit := GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		meta = append(meta, commit)
	}
	if BuildDate != "" {
		meta = append(meta, BuildDate)
	}
	if len(meta) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(meta, ", ") + ")"
}
