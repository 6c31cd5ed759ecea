// Package transform runs rewrite rules over a program. Rules are independent
// of each other; they share per-pass state, most importantly the import
// registry, which is finalized once after every rule has run.
package transform

import (
	"context"
	"fmt"
	"strconv"

	"jsxform/internal/ast"
	"jsxform/internal/moduleimports"
	"jsxform/internal/source"
	"jsxform/internal/symbols"
	"jsxform/internal/trace"
)

// State is the pass-wide state handed to every rule.
type State struct {
	Symbols *symbols.Table
	Imports *moduleimports.Registry
	Builder *ast.Builder
}

// DeclareImportBinding returns the root-scope symbol for name, declaring it
// as a synthesized import binding if it does not exist yet.
func (s *State) DeclareImportBinding(name string) symbols.SymbolID {
	id, _ := s.Symbols.Declare(s.Symbols.Root(), name, symbols.SymbolImport, symbols.SymbolFlagSynthesized, source.NoSpan)
	return id
}

type Rule interface {
	Name() string
	Enter(ctx context.Context, prog *ast.Program, st *State) error
}

// RuleFunc adapts a function to Rule.
type RuleFunc struct {
	RuleName string
	Fn       func(ctx context.Context, prog *ast.Program, st *State) error
}

func (r RuleFunc) Name() string { return r.RuleName }

func (r RuleFunc) Enter(ctx context.Context, prog *ast.Program, st *State) error {
	return r.Fn(ctx, prog, st)
}

type Transformer struct {
	rules []Rule

	// BeforeFinalize, when set, observes the state after the last rule and
	// before the import registry is drained.
	BeforeFinalize func(st *State)
}

func New(rules ...Rule) *Transformer {
	return &Transformer{rules: rules}
}

// Run applies every rule in order, then prepends the synthesized imports to
// prog. It returns the number of statements inserted.
func (t *Transformer) Run(ctx context.Context, prog *ast.Program, table *symbols.Table) (int, error) {
	if prog == nil {
		return 0, fmt.Errorf("transform: nil program")
	}
	if table == nil {
		return 0, fmt.Errorf("transform: nil symbol table")
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "transform", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	b := ast.Synthetic()
	st := &State{
		Symbols: table,
		Imports: moduleimports.New(moduleimports.Options{Builder: b, Tracer: tracer}),
		Builder: b,
	}

	for _, rule := range t.rules {
		rs := trace.Begin(tracer, trace.ScopeNode, rule.Name(), span.ID())
		err := rule.Enter(ctx, prog, st)
		rs.End("")
		if err != nil {
			trace.Error(tracer, trace.ScopePass, rule.Name(), err)
			span.End("failed")
			return 0, fmt.Errorf("rule %s: %w", rule.Name(), err)
		}
	}

	if t.BeforeFinalize != nil {
		t.BeforeFinalize(st)
	}

	stmts, err := st.Imports.Finalize(ctx, table)
	if err != nil {
		span.End("failed")
		return 0, fmt.Errorf("finalize imports: %w", err)
	}
	prog.Prepend(stmts...)
	span.WithExtra("inserted", strconv.Itoa(len(stmts))).End("")
	return len(stmts), nil
}
