package moduleimports

import "jsxform/internal/symbols"

// Specifier is one requested binding. Symbol is allocated by the caller and
// ties the synthesized declaration to existing uses in the tree.
type Specifier struct {
	Imported string
	Local    string // empty means the imported name is reused
	Symbol   symbols.SymbolID
}

func NewSpecifier(imported, local string, sym symbols.SymbolID) Specifier {
	return Specifier{Imported: imported, Local: local, Symbol: sym}
}

// LocalName returns the name the declaration binds.
func (s Specifier) LocalName() string {
	if s.Local == "" {
		return s.Imported
	}
	return s.Local
}
