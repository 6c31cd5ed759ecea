package ast

import (
	"jsxform/internal/source"
	"jsxform/internal/symbols"
)

// Builder constructs nodes positioned at a fixed span. Transforms use a
// builder with source.NoSpan for code that has no origin in the input.
type Builder struct {
	span  source.Span
	nodes uint
}

func NewBuilder(span source.Span) *Builder {
	return &Builder{span: span}
}

// Synthetic returns a builder for zero-width synthesized nodes.
func Synthetic() *Builder {
	return NewBuilder(source.NoSpan)
}

// Nodes reports how many nodes the builder has produced.
func (b *Builder) Nodes() uint { return b.nodes }

func (b *Builder) stmt(data S) Stmt {
	b.nodes++
	return Stmt{Data: data, Span: b.span}
}

func (b *Builder) expr(data E) Expr {
	b.nodes++
	return Expr{Data: data, Span: b.span}
}

func (b *Builder) BindingIdent(name string, sym symbols.SymbolID) *BIdentifier {
	b.nodes++
	return &BIdentifier{Name: name, Symbol: sym}
}

// ImportSpecifier builds the clause `{imported as local}`.
func (b *Builder) ImportSpecifier(imported, local string, sym symbols.SymbolID) ClauseItem {
	return ClauseItem{
		Imported: imported,
		Local:    *b.BindingIdent(local, sym),
	}
}

// ImportDeclaration builds a value import of source. def may be nil.
func (b *Builder) ImportDeclaration(def *BIdentifier, items []ClauseItem, src string) Stmt {
	return b.stmt(&SImport{
		DefaultName: def,
		Items:       items,
		Source:      src,
	})
}

func (b *Builder) StringLiteral(value string) Expr {
	return b.expr(&EString{Value: value})
}

func (b *Builder) IdentifierReference(name string, ref symbols.ReferenceID) Expr {
	return b.expr(&EIdentifier{Name: name, Ref: ref})
}

func (b *Builder) Call(target Expr, args ...Expr) Expr {
	return b.expr(&ECall{Target: target, Args: args})
}

func (b *Builder) BindingPattern(id *BIdentifier) Binding {
	return Binding{Data: id, Span: b.span}
}

// VariableDeclaration builds a single-declarator `kind id = init`.
func (b *Builder) VariableDeclaration(kind LocalKind, id Binding, init Expr) Stmt {
	return b.stmt(&SLocal{
		Kind:  kind,
		Decls: []Decl{{Binding: id, ValueOrNil: init}},
	})
}

func (b *Builder) Verbatim(text string) Stmt {
	return b.stmt(&SVerbatim{Text: text})
}
