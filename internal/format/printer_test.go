package format

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"jsxform/internal/ast"
	"jsxform/internal/symbols"
)

func TestPrintImports(t *testing.T) {
	b := ast.Synthetic()
	for name, tc := range map[string]struct {
		stmt ast.Stmt
		opt  Options
		want string
	}{
		"named direct": {
			stmt: b.ImportDeclaration(nil, []ast.ClauseItem{b.ImportSpecifier("foo", "foo", 1)}, "lib"),
			want: `import { foo } from "lib";`,
		},
		"named aliased": {
			stmt: b.ImportDeclaration(nil, []ast.ClauseItem{
				b.ImportSpecifier("a", "a", 1),
				b.ImportSpecifier("b", "_b", 2),
			}, "lib"),
			want: `import { a, b as _b } from "lib";`,
		},
		"default": {
			stmt: b.ImportDeclaration(b.BindingIdent("bar", 3), nil, "lib"),
			want: `import bar from "lib";`,
		},
		"default and named": {
			stmt: b.ImportDeclaration(b.BindingIdent("React", 4), []ast.ClauseItem{b.ImportSpecifier("useState", "useState", 5)}, "react"),
			want: `import React, { useState } from "react";`,
		},
		"side effect only": {
			stmt: b.ImportDeclaration(nil, nil, "core-js/stable"),
			want: `import "core-js/stable";`,
		},
		"single quotes without semicolons": {
			stmt: b.ImportDeclaration(b.BindingIdent("x", 6), nil, "it's"),
			opt:  Options{Quote: QuoteSingle, OmitSemicolons: true},
			want: `import x from 'it\'s'`,
		},
		"wrapped past line width": {
			stmt: b.ImportDeclaration(nil, []ast.ClauseItem{
				b.ImportSpecifier("a", "a", 1),
				b.ImportSpecifier("b", "_b", 2),
			}, "lib"),
			opt:  Options{LineWidth: 20},
			want: "import {\n  a,\n  b as _b,\n} from \"lib\";",
		},
		"fits line width": {
			stmt: b.ImportDeclaration(nil, []ast.ClauseItem{
				b.ImportSpecifier("a", "a", 1),
				b.ImportSpecifier("b", "_b", 2),
			}, "lib"),
			opt:  Options{LineWidth: 80},
			want: `import { a, b as _b } from "lib";`,
		},
		"single item never wraps": {
			stmt: b.ImportDeclaration(nil, []ast.ClauseItem{b.ImportSpecifier("foo", "foo", 1)}, "lib"),
			opt:  Options{LineWidth: 5, IndentWidth: 4},
			want: `import { foo } from "lib";`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, PrintStmt(tc.stmt, tc.opt)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintRequire(t *testing.T) {
	b := ast.Synthetic()
	call := b.Call(b.IdentifierReference("require", symbols.ReferenceID(1)), b.StringLiteral("cjs-mod"))
	stmt := b.VariableDeclaration(ast.LocalVar, b.BindingPattern(b.BindingIdent("baz", 7)), call)
	if got, want := PrintStmt(stmt, Options{}), `var baz = require("cjs-mod");`; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPrintStmtsAndProgram(t *testing.T) {
	b := ast.Synthetic()
	prog := &ast.Program{Body: []ast.Stmt{
		b.ImportDeclaration(nil, []ast.ClauseItem{b.ImportSpecifier("foo", "foo", 1)}, "lib"),
		b.VariableDeclaration(ast.LocalVar, b.BindingPattern(b.BindingIdent("x", 2)), b.Call(b.IdentifierReference("foo", 0))),
		b.Verbatim("main();"),
	}}
	want := "import { foo } from \"lib\";\nvar x = foo();\nmain();\n"
	if diff := cmp.Diff(want, string(PrintProgram(prog, Options{}))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if PrintProgram(nil, Options{}) != nil {
		t.Errorf("nil program should print nothing")
	}
}

func TestQuoteStringEscapes(t *testing.T) {
	cases := map[string]string{
		`plain`:        `"plain"`,
		"a\"b":         `"a\"b"`,
		`back\slash`:   `"back\\slash"`,
		"line\nbreak":  `"line\nbreak"`,
		"\x01":         `"\u0001"`,
		"café":         "\"café\"",
		"sep\u2028end": `"sep\u2028end"`,
		"bad\xffbyte":  `"bad\xffbyte"`,
		"ok\ufffd":     "\"ok\ufffd\"",
	}
	for in, want := range cases {
		if got := quoteString(in, '"'); got != want {
			t.Errorf("quoteString(%q) = %s, want %s", in, got, want)
		}
	}
}
