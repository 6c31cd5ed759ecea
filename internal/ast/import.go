package ast

// SImport covers the module declaration forms:
//
//	import defaultName from 'path'
//	import {item1, item2 as alias} from 'path'
//	import defaultName, {item1} from 'path'
//
// DefaultName and Items may be combined; at least one of them is set.
type SImport struct {
	DefaultName *BIdentifier
	Items       []ClauseItem
	Source      string
}

// ClauseItem is one entry of a named import clause. Imported is the name
// exported by the source module; Local is the binding it introduces.
type ClauseItem struct {
	Imported string
	Local    BIdentifier
}

// IsAliased reports whether the clause needs the "as" form.
func (c ClauseItem) IsAliased() bool {
	return c.Imported != c.Local.Name
}
