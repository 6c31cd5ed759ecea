package observ

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	load := timer.Begin("load")
	timer.End(load, "")
	tr := timer.Begin("transform")
	timer.End(tr, "2 inserted")
	timer.End(99, "ignored")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[1].Note != "2 inserted" {
		t.Fatalf("unexpected note %q", report.Phases[1].Note)
	}
	if timer.Duration(99) != 0 {
		t.Fatalf("unknown phase should have zero duration")
	}
	if !strings.Contains(report.Summary(), "transform") || !strings.Contains(report.Summary(), "total") {
		t.Fatalf("summary missing rows:\n%s", report.Summary())
	}
}

func TestEmptyTimerReport(t *testing.T) {
	if diff := cmp.Diff(Report{}, NewTimer().Report()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReportMerge(t *testing.T) {
	a := Report{TotalMS: 3, Phases: []PhaseReport{{Name: "load", DurationMS: 1}, {Name: "print", DurationMS: 2}}}
	b := Report{TotalMS: 4, Phases: []PhaseReport{{Name: "print", DurationMS: 1}, {Name: "transform", DurationMS: 3, Note: "x"}}}
	want := Report{TotalMS: 7, Phases: []PhaseReport{
		{Name: "load", DurationMS: 1},
		{Name: "print", DurationMS: 3},
		{Name: "transform", DurationMS: 3},
	}}
	if diff := cmp.Diff(want, a.Merge(b)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if len(a.Phases) != 2 || a.Phases[1].DurationMS != 2 {
		t.Fatalf("merge modified receiver: %+v", a)
	}
}
