package format

import (
	"fmt"

	"jsxform/internal/ast"
)

func (p *printer) printExpr(e ast.Expr) {
	switch data := e.Data.(type) {
	case *ast.ECall:
		p.printExpr(data.Target)
		_ = p.writer.WriteByte('(')
		for i, arg := range data.Args {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printExpr(arg)
		}
		_ = p.writer.WriteByte(')')
	case *ast.EIdentifier:
		p.writer.WriteString(data.Name)
	case *ast.EString:
		p.printString(data.Value)
	default:
		panic(fmt.Sprintf("format: unsupported expression %T", e.Data))
	}
}

func (p *printer) printString(s string) {
	p.writer.WriteString(quoteString(s, byte(p.opt.Quote)))
}
