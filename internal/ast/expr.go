package ast

import (
	"jsxform/internal/source"
	"jsxform/internal/symbols"
)

type Expr struct {
	Data E
	Span source.Span
}

// E is the variant interface for expression payloads.
type E interface{ isExpr() }

func (*ECall) isExpr()       {}
func (*EIdentifier) isExpr() {}
func (*EString) isExpr()     {}

type ECall struct {
	Target Expr
	Args   []Expr
}

// EIdentifier is a use of a name. Ref ties it to the symbol table.
type EIdentifier struct {
	Name string
	Ref  symbols.ReferenceID
}

type EString struct {
	Value string
}

// IsMissing reports whether the expression slot is empty.
func (e Expr) IsMissing() bool { return e.Data == nil }
