// Package testkit holds invariant checks shared by tests and fuzz targets.
package testkit

import (
	"errors"
	"fmt"

	"jsxform/internal/ast"
	"jsxform/internal/source"
	"jsxform/internal/symbols"
)

// CheckSynthesized verifies statements produced by the import registry:
//  1. every node carries the synthetic span
//  2. every declared binding names a symbol of the table with the same name
//  3. require declarations call the root "require" binding through a read
//     reference with a single string argument
func CheckSynthesized(stmts []ast.Stmt, table *symbols.Table) error {
	if table == nil {
		return errors.New("nil symbol table")
	}
	var errs []error
	for i, stmt := range stmts {
		if err := checkStmt(stmt, table); err != nil {
			errs = append(errs, fmt.Errorf("statement %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func checkStmt(stmt ast.Stmt, table *symbols.Table) error {
	if err := checkSpan("statement", stmt.Span); err != nil {
		return err
	}
	switch s := stmt.Data.(type) {
	case *ast.SImport:
		return checkImport(s, table)
	case *ast.SLocal:
		return checkRequire(s, table)
	default:
		return fmt.Errorf("unexpected statement %T", stmt.Data)
	}
}

func checkImport(s *ast.SImport, table *symbols.Table) error {
	if s.Source == "" {
		return errors.New("import without source")
	}
	if s.DefaultName == nil && len(s.Items) == 0 {
		return errors.New("import without bindings")
	}
	if s.DefaultName != nil {
		if err := checkBinding(s.DefaultName, table); err != nil {
			return err
		}
	}
	for _, item := range s.Items {
		if item.Imported == "" {
			return errors.New("clause item without imported name")
		}
		if err := checkBinding(&item.Local, table); err != nil {
			return err
		}
	}
	return nil
}

func checkRequire(s *ast.SLocal, table *symbols.Table) error {
	if len(s.Decls) != 1 {
		return fmt.Errorf("require declares %d bindings", len(s.Decls))
	}
	decl := s.Decls[0]
	if err := checkSpan("binding", decl.Binding.Span); err != nil {
		return err
	}
	id, ok := decl.Binding.Data.(*ast.BIdentifier)
	if !ok {
		return fmt.Errorf("unexpected binding %T", decl.Binding.Data)
	}
	if err := checkBinding(id, table); err != nil {
		return err
	}

	call, ok := decl.ValueOrNil.Data.(*ast.ECall)
	if !ok {
		return fmt.Errorf("initializer is %T, want call", decl.ValueOrNil.Data)
	}
	if err := checkSpan("call", decl.ValueOrNil.Span); err != nil {
		return err
	}
	callee, ok := call.Target.Data.(*ast.EIdentifier)
	if !ok {
		return fmt.Errorf("callee is %T, want identifier", call.Target.Data)
	}
	ref := table.References.Get(callee.Ref)
	if ref == nil {
		return fmt.Errorf("callee %q has no reference", callee.Name)
	}
	want, err := table.RootBinding(callee.Name)
	if err != nil {
		return err
	}
	if ref.Symbol != want {
		return fmt.Errorf("callee resolves to symbol %d, want root binding %d", ref.Symbol, want)
	}
	if !ref.Flags.IsRead() || ref.Flags.IsWrite() {
		return fmt.Errorf("callee reference flags %s, want read", ref.Flags)
	}
	if len(call.Args) != 1 {
		return fmt.Errorf("require called with %d arguments", len(call.Args))
	}
	if _, ok := call.Args[0].Data.(*ast.EString); !ok {
		return fmt.Errorf("require argument is %T, want string", call.Args[0].Data)
	}
	return nil
}

func checkBinding(id *ast.BIdentifier, table *symbols.Table) error {
	if id.Name == "" {
		return errors.New("binding without name")
	}
	if !id.Symbol.IsValid() {
		return fmt.Errorf("binding %q has no symbol", id.Name)
	}
	if got := table.Name(id.Symbol); got != id.Name {
		return fmt.Errorf("binding %q refers to symbol named %q", id.Name, got)
	}
	return nil
}

func checkSpan(what string, sp source.Span) error {
	if sp != source.NoSpan {
		return fmt.Errorf("%s has source span %v", what, sp)
	}
	return nil
}
