package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLevelFiltersScopes(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
}

func TestParseLevelAndMode(t *testing.T) {
	if lvl, err := ParseLevel("DEBUG"); err != nil || lvl != LevelDebug {
		t.Fatalf("ParseLevel(DEBUG) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if mode, err := ParseMode("both"); err != nil || mode != ModeBoth {
		t.Fatalf("ParseMode(both) = %v, %v", mode, err)
	}
	if _, err := ParseMode("disk"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)

	span := Begin(tr, ScopePass, "transform", 0)
	Point(tr, ScopeNode, "add_import", "lib", "imported", "foo")
	span.WithExtra("statements", "1").End("")

	out := buf.String()
	for _, want := range []string{"pass:transform", "node:add_import (lib) {imported=foo}", "{statements=1}"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	Point(tr, ScopeFile, "load", "a.toml")
	Point(tr, ScopeNode, "dropped", "")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(lines), buf.String())
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["name"] != "load" || decoded["scope"] != "file" {
		t.Fatalf("unexpected event %v", decoded)
	}
}

func TestErrorEventsPassErrorLevel(t *testing.T) {
	ring := NewRingTracer(8, LevelError)
	Point(ring, ScopeDriver, "ignored", "")
	Error(ring, ScopePass, "finalize", errors.New("boom"))
	events := ring.Snapshot()
	if len(events) != 1 || events[0].Kind != KindError || events[0].Detail != "boom" {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestRingTracerWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(ring, ScopeNode, name, "")
	}
	events := ring.Snapshot()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, want := range []string{"c", "d", "e"} {
		if events[i].Name != want {
			t.Fatalf("events[%d] = %q want %q", i, events[i].Name, want)
		}
	}
	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatText); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("dump wrote %q", buf.String())
	}
}

func TestMultiTracerFansOut(t *testing.T) {
	a := NewRingTracer(4, LevelDebug)
	b := NewRingTracer(4, LevelDebug)
	m := NewMultiTracer(LevelDebug, a, b)
	Point(m, ScopeNode, "x", "")
	if len(a.Snapshot()) != 1 || len(b.Snapshot()) != 1 {
		t.Fatalf("fan-out failed")
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("expected Nop for empty context")
	}
	ring := NewRingTracer(4, LevelDebug)
	ctx := WithTracer(context.Background(), ring)
	if FromContext(ctx) != Tracer(ring) {
		t.Fatalf("tracer not propagated")
	}
	span := Begin(ring, ScopePass, "p", 0)
	ctx = WithSpan(ctx, span)
	if CurrentSpan(ctx) != span.ID() {
		t.Fatalf("span not propagated")
	}
}

func TestNewOffReturnsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatalf("New(both): %v", err)
	}
	Begin(tr, ScopeDriver, "run", 0).End("")
	if buf.Len() == 0 {
		t.Fatalf("stream half of ModeBoth wrote nothing")
	}
}

func TestHeartbeatStops(t *testing.T) {
	if StartHeartbeat(Nop, time.Millisecond) != nil {
		t.Fatalf("heartbeat should not start for disabled tracer")
	}
	ring := NewRingTracer(16, LevelPhase)
	hb := StartHeartbeat(ring, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for len(ring.Snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	hb.Stop()
	hb.Stop()
	if len(ring.Snapshot()) == 0 {
		t.Fatalf("no heartbeat observed")
	}
}
