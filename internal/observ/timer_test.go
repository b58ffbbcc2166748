package observ

import (
	"errors"
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("load")
	tm.End(idx, "3 files")
	err := tm.Track("tokenize", func() error { return errors.New("boom") })
	if err == nil {
		t.Fatal("Track should return the phase error")
	}
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].Note != "3 files" || report.Phases[1].Note != "failed" {
		t.Errorf("unexpected notes: %+v", report.Phases)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:", "load", "tokenize", "// failed", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	report := NewTimer().Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}
