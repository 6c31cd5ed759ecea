package format

import (
	"github.com/mattn/go-runewidth"

	"jsxform/internal/ast"
)

func (p *printer) printImport(imp *ast.SImport) {
	p.writer.WriteString("import ")

	wroteClause := false
	if imp.DefaultName != nil {
		p.writer.WriteString(imp.DefaultName.Name)
		wroteClause = true
	}

	if len(imp.Items) > 0 {
		if wroteClause {
			p.writer.WriteString(", ")
		}
		if p.shouldWrap(imp) {
			p.writer.WriteString("{")
			p.writer.Newline()
			p.writer.IndentPush()
			for _, item := range imp.Items {
				p.printClauseItem(item)
				p.writer.WriteString(",")
				p.writer.Newline()
			}
			p.writer.IndentPop()
			p.writer.WriteString("}")
		} else {
			p.writer.WriteString("{ ")
			for i, item := range imp.Items {
				if i > 0 {
					p.writer.WriteString(", ")
				}
				p.printClauseItem(item)
			}
			p.writer.WriteString(" }")
		}
		wroteClause = true
	}

	if wroteClause {
		p.writer.WriteString(" from ")
	}
	p.printString(imp.Source)
	p.writer.Semicolon()
}

func (p *printer) printClauseItem(item ast.ClauseItem) {
	p.writer.WriteString(item.Imported)
	if item.IsAliased() {
		p.writer.WriteString(" as ")
		p.writer.WriteString(item.Local.Name)
	}
}

// shouldWrap reports whether the single-line form of imp exceeds the
// configured line width.
func (p *printer) shouldWrap(imp *ast.SImport) bool {
	if p.opt.LineWidth <= 0 || len(imp.Items) < 2 {
		return false
	}
	flat := p.opt
	flat.LineWidth = 0
	return runewidth.StringWidth(PrintStmt(ast.Stmt{Data: imp}, flat)) > p.opt.LineWidth
}
