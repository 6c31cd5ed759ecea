package format

import (
	"fmt"

	"jsxform/internal/ast"
)

func (p *printer) printLocal(local *ast.SLocal) {
	p.writer.WriteString(local.Kind.String())
	p.writer.WriteString(" ")
	for i, decl := range local.Decls {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		p.printBinding(decl.Binding)
		if !decl.ValueOrNil.IsMissing() {
			p.writer.WriteString(" = ")
			p.printExpr(decl.ValueOrNil)
		}
	}
	p.writer.Semicolon()
}

func (p *printer) printBinding(b ast.Binding) {
	switch data := b.Data.(type) {
	case *ast.BIdentifier:
		p.writer.WriteString(data.Name)
	default:
		panic(fmt.Sprintf("format: unsupported binding %T", b.Data))
	}
}
