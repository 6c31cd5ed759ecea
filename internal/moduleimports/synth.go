package moduleimports

import (
	"fmt"

	"jsxform/internal/ast"
	"jsxform/internal/source"
	"jsxform/internal/symbols"
)

// requireName is the root binding require synthesis calls.
const requireName = "require"

func mustHaveSpecifiers(kind ImportKind, src string, specs []Specifier) {
	if len(specs) == 0 {
		panic(fmt.Sprintf("moduleimports: %s entry for %q has no specifiers", kind, src))
	}
}

// namedImport builds `import { a, b as c } from "src"` with one clause per
// specifier, in insertion order.
func (r *Registry) namedImport(src string, specs []Specifier) ast.Stmt {
	mustHaveSpecifiers(KindNamed, src, specs)
	items := make([]ast.ClauseItem, 0, len(specs))
	for _, spec := range specs {
		items = append(items, r.b.ImportSpecifier(spec.Imported, spec.LocalName(), spec.Symbol))
	}
	return r.b.ImportDeclaration(nil, items, src)
}

// defaultImport builds `import a from "src"`. Default entries hold exactly
// one specifier, and the binding uses its imported name.
func (r *Registry) defaultImport(src string, specs []Specifier) ast.Stmt {
	mustHaveSpecifiers(KindDefault, src, specs)
	spec := specs[0]
	return r.b.ImportDeclaration(r.b.BindingIdent(spec.Imported, spec.Symbol), nil, src)
}

// require builds `var a = require("src")` from the first specifier only.
// The callee is a read reference to the root binding of require.
func (r *Registry) require(src string, specs []Specifier, res Resolver) (ast.Stmt, error) {
	mustHaveSpecifiers(KindRequire, src, specs)
	sym, err := res.RootBinding(requireName)
	if err != nil {
		return ast.Stmt{}, err
	}
	ref := res.CreateReference(source.NoSpan, requireName, sym, symbols.ReferenceRead)
	call := r.b.Call(r.b.IdentifierReference(requireName, ref), r.b.StringLiteral(src))

	first := specs[0]
	id := r.b.BindingPattern(r.b.BindingIdent(first.LocalName(), first.Symbol))
	return r.b.VariableDeclaration(ast.LocalVar, id, call), nil
}
