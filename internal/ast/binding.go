package ast

import (
	"jsxform/internal/source"
	"jsxform/internal/symbols"
)

type Binding struct {
	Data B
	Span source.Span
}

// B is the variant interface for binding patterns.
type B interface{ isBinding() }

func (*BIdentifier) isBinding() {}

// BIdentifier declares Name and binds it to Symbol.
type BIdentifier struct {
	Name   string
	Symbol symbols.SymbolID
}
