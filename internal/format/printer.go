package format

import (
	"fmt"

	"jsxform/internal/ast"
)

// Quote selects the delimiter used for string literals.
type Quote byte

const (
	QuoteDouble Quote = '"'
	QuoteSingle Quote = '\''
)

type Options struct {
	Quote          Quote
	OmitSemicolons bool
	IndentWidth    int
	// LineWidth wraps named import clauses one item per line when the
	// statement would be wider. Zero disables wrapping.
	LineWidth int
}

func (o Options) withDefaults() Options {
	if o.Quote == 0 {
		o.Quote = QuoteDouble
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}

type printer struct {
	writer *Writer
	opt    Options
}

// PrintStmts prints stmts one per line.
func PrintStmts(stmts []ast.Stmt, opt Options) []byte {
	opt = opt.withDefaults()
	p := printer{writer: NewWriter(opt), opt: opt}
	for i := range stmts {
		p.printStmt(&stmts[i])
		p.writer.Newline()
	}
	return p.writer.Bytes()
}

// PrintProgram prints the program body.
func PrintProgram(prog *ast.Program, opt Options) []byte {
	if prog == nil {
		return nil
	}
	return PrintStmts(prog.Body, opt)
}

// PrintStmt prints a single statement without a trailing newline.
func PrintStmt(stmt ast.Stmt, opt Options) string {
	opt = opt.withDefaults()
	p := printer{writer: NewWriter(opt), opt: opt}
	p.printStmt(&stmt)
	return string(p.writer.Bytes())
}

func (p *printer) printStmt(stmt *ast.Stmt) {
	switch s := stmt.Data.(type) {
	case *ast.SImport:
		p.printImport(s)
	case *ast.SLocal:
		p.printLocal(s)
	case *ast.SVerbatim:
		p.writer.WriteString(s.Text)
	default:
		panic(fmt.Sprintf("format: unsupported statement %T", stmt.Data))
	}
}
