package main

import (
	"fmt"
	"io"

	"lexkit/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	report := timer.Report()
	for _, p := range report.Phases {
		if p.Note != "" {
			fmt.Fprintf(out, "%s %.1f ms (%s)\n", p.Name, p.DurationMS, p.Note)
			continue
		}
		fmt.Fprintf(out, "%s %.1f ms\n", p.Name, p.DurationMS)
	}
	fmt.Fprintf(out, "total %.1f ms\n", report.TotalMS)
}
