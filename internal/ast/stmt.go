package ast

import (
	"jsxform/internal/source"
)

type Stmt struct {
	Data S
	Span source.Span
}

// S is the variant interface for statement payloads. It is never called;
// it only restricts which types may appear in Stmt.Data.
type S interface{ isStmt() }

func (*SImport) isStmt()   {}
func (*SLocal) isStmt()    {}
func (*SVerbatim) isStmt() {}

// SVerbatim carries program text this package does not model. The printer
// emits it unchanged.
type SVerbatim struct {
	Text string
}

// Program is the root of one transformed file.
type Program struct {
	File source.FileID
	Body []Stmt
}

// Prepend inserts stmts ahead of the existing body, keeping their order.
func (p *Program) Prepend(stmts ...Stmt) {
	if len(stmts) == 0 {
		return
	}
	body := make([]Stmt, 0, len(stmts)+len(p.Body))
	body = append(body, stmts...)
	p.Body = append(body, p.Body...)
}
