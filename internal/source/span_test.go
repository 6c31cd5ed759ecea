package source

import "testing"

func TestNoSpanIsSyntheticAndEmpty(t *testing.T) {
	if !NoSpan.Synthetic() || !NoSpan.Empty() {
		t.Fatalf("NoSpan should be synthetic and zero-width")
	}
	if got := NoSpan.String(); got != "<synthetic>" {
		t.Fatalf("unexpected NoSpan string %q", got)
	}
	sp := Span{File: 1, Start: 4, End: 10}
	if sp.Synthetic() {
		t.Fatalf("file span reported as synthetic")
	}
	if sp.Len() != 6 {
		t.Fatalf("Len = %d", sp.Len())
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Fatalf("Cover = %v", got)
	}
	if other := a.Cover(Span{File: 2, Start: 0, End: 100}); other != a {
		t.Fatalf("Cover across files should return receiver, got %v", other)
	}
}
