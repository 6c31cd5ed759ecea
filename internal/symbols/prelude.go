package symbols

import "jsxform/internal/source"

// CommonJSGlobals are the names a CommonJS module sees without declaring them.
var CommonJSGlobals = []string{"require", "module", "exports", "__filename", "__dirname"}

// DeclareGlobals binds each name in the root scope as an ambient global.
// Names that are already bound keep their existing symbol.
func (t *Table) DeclareGlobals(names ...string) []SymbolID {
	ids := make([]SymbolID, 0, len(names))
	for _, name := range names {
		id, _ := t.Declare(t.root, name, SymbolGlobal, SymbolFlagAmbient, source.NoSpan)
		ids = append(ids, id)
	}
	return ids
}
