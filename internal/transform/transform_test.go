package transform

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jsxform/internal/ast"
	"jsxform/internal/format"
	"jsxform/internal/moduleimports"
	"jsxform/internal/symbols"
	"jsxform/internal/testkit"
	"jsxform/internal/trace"
)

func newTable() *symbols.Table {
	table := symbols.NewTable(symbols.Hints{}, nil)
	table.DeclareGlobals(symbols.CommonJSGlobals...)
	return table
}

func importRule(name, src, imported string) Rule {
	return RuleFunc{RuleName: name, Fn: func(_ context.Context, _ *ast.Program, st *State) error {
		st.Imports.AddImport(src, moduleimports.NewSpecifier(imported, "", st.DeclareImportBinding(imported)))
		return nil
	}}
}

func TestRulesShareOneRegistry(t *testing.T) {
	polyfill := RuleFunc{RuleName: "polyfill", Fn: func(_ context.Context, _ *ast.Program, st *State) error {
		st.Imports.AddRequire("core-js", moduleimports.NewSpecifier("corejs", "", st.DeclareImportBinding("corejs")), true)
		return nil
	}}
	tr := New(
		importRule("jsx", "react/jsx-runtime", "jsx"),
		importRule("jsxs", "react/jsx-runtime", "jsxs"),
		polyfill,
	)

	prog := &ast.Program{Body: []ast.Stmt{ast.Synthetic().Verbatim("render();")}}
	table := newTable()
	n, err := tr.Run(context.Background(), prog, table)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 2 {
		t.Fatalf("inserted %d statements, want 2", n)
	}
	if err := testkit.CheckSynthesized(prog.Body[:n], table); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
	want := `var corejs = require("core-js");
import { jsx, jsxs } from "react/jsx-runtime";
render();
`
	if diff := cmp.Diff(want, string(format.PrintProgram(prog, format.Options{}))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRuleErrorStopsPass(t *testing.T) {
	boom := errors.New("boom")
	failing := RuleFunc{RuleName: "failing", Fn: func(context.Context, *ast.Program, *State) error { return boom }}
	prog := &ast.Program{}
	_, err := New(importRule("a", "lib", "a"), failing).Run(context.Background(), prog, newTable())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped rule error, got %v", err)
	}
	if len(prog.Body) != 0 {
		t.Fatalf("program modified after failed pass")
	}
}

func TestMissingRequireFailsPass(t *testing.T) {
	rule := RuleFunc{RuleName: "cjs", Fn: func(_ context.Context, _ *ast.Program, st *State) error {
		st.Imports.AddRequire("x", moduleimports.NewSpecifier("x", "", st.DeclareImportBinding("x")), false)
		return nil
	}}
	_, err := New(rule).Run(context.Background(), &ast.Program{}, symbols.NewTable(symbols.Hints{}, nil))
	var unresolved *symbols.UnresolvedBindingError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected unresolved binding error, got %v", err)
	}
}

func TestBeforeFinalizeSeesEntries(t *testing.T) {
	tr := New(importRule("a", "lib", "a"), importRule("b", "lib", "b"))
	var seen []moduleimports.Entry
	tr.BeforeFinalize = func(st *State) { seen = st.Imports.Entries() }
	if _, err := tr.Run(context.Background(), &ast.Program{}, newTable()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(seen) != 1 || len(seen[0].Specifiers) != 2 {
		t.Fatalf("unexpected entries %+v", seen)
	}
}

func TestRunTracesRules(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	if _, err := New(importRule("jsx", "lib", "jsx")).Run(ctx, &ast.Program{}, newTable()); err != nil {
		t.Fatalf("run: %v", err)
	}
	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanBegin {
			names = append(names, ev.Name)
		}
	}
	if diff := cmp.Diff([]string{"transform", "jsx", "module_imports"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRunRejectsNilInputs(t *testing.T) {
	if _, err := New().Run(context.Background(), nil, newTable()); err == nil {
		t.Fatalf("expected error for nil program")
	}
	if _, err := New().Run(context.Background(), &ast.Program{}, nil); err == nil {
		t.Fatalf("expected error for nil table")
	}
}
