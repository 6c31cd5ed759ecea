package moduleimports

// ImportKind selects how a binding is brought into the program.
type ImportKind uint8

const (
	KindNamed   ImportKind = iota + 1 // import { a, b as c } from "src"
	KindDefault                       // import a from "src"
	KindRequire                       // var a = require("src")
)

func (k ImportKind) String() string {
	switch k {
	case KindNamed:
		return "named"
	case KindDefault:
		return "default"
	case KindRequire:
		return "require"
	default:
		return "invalid"
	}
}
