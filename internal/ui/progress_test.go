package ui

import (
	"errors"
	"strings"
	"testing"

	"jsxform/internal/driver"
)

func newModel(files ...string) *progressModel {
	return NewProgressModel("jsxform", files, make(chan driver.Event)).(*progressModel)
}

func TestApplyEventUpdatesItems(t *testing.T) {
	m := newModel("a.toml", "b.toml")
	m.applyEvent(driver.Event{File: "a.toml", Stage: driver.StageTransform, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "rewriting" {
		t.Fatalf("status = %q, want rewriting", got)
	}
	if got := m.percent(); got != 0.25 {
		t.Fatalf("percent = %v, want 0.25", got)
	}

	m.applyEvent(driver.Event{File: "a.toml", Stage: driver.StagePrint, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.toml", Stage: driver.StageLoad, Status: driver.StatusError, Err: errors.New("bad plan")})
	if got := m.percent(); got != 1 {
		t.Fatalf("percent = %v, want 1", got)
	}
	if m.finishedCount() != 2 {
		t.Fatalf("finished = %d, want 2", m.finishedCount())
	}

	view := m.View()
	for _, want := range []string{"a.toml", "b.toml", "bad plan", "[2/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestApplyEventIgnoresUnknownFiles(t *testing.T) {
	m := newModel("a.toml")
	if cmd := m.applyEvent(driver.Event{File: "other.toml", Status: driver.StatusDone}); cmd != nil {
		t.Fatalf("unexpected command for unknown file")
	}
	if m.items[0].status != "queued" {
		t.Fatalf("unknown file changed state")
	}
}

func TestRunLevelEventSetsHeader(t *testing.T) {
	m := newModel("a.toml")
	m.applyEvent(driver.Event{Stage: driver.StageLoad, Status: driver.StatusWorking})
	if m.stageLabel != "loading" {
		t.Fatalf("stage label = %q", m.stageLabel)
	}
}

func TestCachedCountsAsFinished(t *testing.T) {
	m := newModel("a.toml")
	m.applyEvent(driver.Event{File: "a.toml", Stage: driver.StageLoad, Status: driver.StatusCached})
	if m.percent() != 1 {
		t.Fatalf("cached file should be complete")
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 6, "abc..."},
		{"abcdefghij", 9, "abcdef..."},
		{"日本語テキスト", 7, "日本..."},
		{"abcdef", 2, "ab"},
		{"anything", 0, "anything"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
