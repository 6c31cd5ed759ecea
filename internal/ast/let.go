package ast

import "fmt"

// LocalKind is the declaration keyword of an SLocal. Synthesized requires
// only ever use var.
type LocalKind uint8

const LocalVar LocalKind = iota

func (k LocalKind) String() string {
	if k == LocalVar {
		return "var"
	}
	return fmt.Sprintf("LocalKind(%d)", uint8(k))
}

type SLocal struct {
	Decls []Decl
	Kind  LocalKind
}

type Decl struct {
	Binding    Binding
	ValueOrNil Expr
}
