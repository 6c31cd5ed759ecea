package version

import (
	"testing"

	"github.com/fatih/color"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	orig := Version
	Version = v
	t.Cleanup(func() { Version = orig })
}

func withoutColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestDefaultVersion(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
}

func TestColoredPlain(t *testing.T) {
	withoutColor(t)
	cases := map[string]string{
		"1.2.3":      "1.2.3",
		"0.1.0-dev":  "0.1.0-dev",
		"2.0.0-rc.1": "2.0.0-rc.1",
		"nightly":    "nightly",
		"1.2":        "1.2",
	}
	for in, want := range cases {
		withVersion(t, in)
		if got := Colored(); got != want {
			t.Errorf("Colored() with %q = %q, want %q", in, got, want)
		}
	}
}

func TestColoredAddsEscapes(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })
	withVersion(t, "1.2.3")
	if got := Colored(); got == "1.2.3" {
		t.Fatalf("expected coloured output, got %q", got)
	}
}

func TestOverrides(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	t.Cleanup(func() { GitCommit, BuildDate = origCommit, origDate })

	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"
	if GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Fatal("build metadata should be assignable")
	}
}
