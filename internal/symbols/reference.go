package symbols

import (
	"strings"

	"jsxform/internal/source"
)

// ReferenceFlags describe how a reference uses its symbol.
type ReferenceFlags uint8

const (
	ReferenceRead ReferenceFlags = 1 << iota
	ReferenceWrite
)

func (f ReferenceFlags) IsRead() bool  { return f&ReferenceRead != 0 }
func (f ReferenceFlags) IsWrite() bool { return f&ReferenceWrite != 0 }

func (f ReferenceFlags) String() string {
	var parts []string
	if f.IsRead() {
		parts = append(parts, "read")
	}
	if f.IsWrite() {
		parts = append(parts, "write")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Reference records one use of a name bound to a symbol.
type Reference struct {
	Name   source.StringID
	Symbol SymbolID
	Span   source.Span
	Flags  ReferenceFlags
}
