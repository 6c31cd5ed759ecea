package symbols

import (
	"jsxform/internal/source"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVar
	SymbolImport
	SymbolFunction
	SymbolGlobal
)

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint16

const (
	SymbolFlagAmbient SymbolFlags = 1 << iota
	SymbolFlagSynthesized
	SymbolFlagExported
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "var"
	case SymbolImport:
		return "import"
	case SymbolFunction:
		return "function"
	case SymbolGlobal:
		return "global"
	default:
		return "invalid"
	}
}

// Strings returns a slice of textual flag labels.
func (f SymbolFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 3)
	if f&SymbolFlagAmbient != 0 {
		labels = append(labels, "ambient")
	}
	if f&SymbolFlagSynthesized != 0 {
		labels = append(labels, "synthesized")
	}
	if f&SymbolFlagExported != 0 {
		labels = append(labels, "exported")
	}
	return labels
}

// Symbol describes a named entity available in a scope.
type Symbol struct {
	Name       source.StringID
	Kind       SymbolKind
	Scope      ScopeID
	Span       source.Span
	Flags      SymbolFlags
	References []ReferenceID
}
