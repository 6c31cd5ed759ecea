package source

import (
	"fmt"
)

type Span struct {
	File  FileID
	Start uint32 // byte offset, inclusive
	End   uint32 // byte offset, exclusive
}

// NoSpan is the zero-width location given to synthesized nodes.
var NoSpan = Span{}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Synthetic reports whether the span does not point into any file.
func (s Span) Synthetic() bool {
	return s == NoSpan
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	if s.Synthetic() {
		return "<synthetic>"
	}
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
