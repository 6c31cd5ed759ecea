package symbols

// ScopeID identifies a scope in the table arena.
type ScopeID uint32

const (
	// NoScopeID marks the absence of a scope reference.
	NoScopeID ScopeID = 0
)

// IsValid reports whether the scope ID refers to an allocated scope.
func (id ScopeID) IsValid() bool { return id != NoScopeID }

// SymbolID identifies a symbol inside the table arena.
type SymbolID uint32

const (
	// NoSymbolID marks the absence of a symbol reference.
	NoSymbolID SymbolID = 0
)

// IsValid reports whether the symbol ID refers to an allocated symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// ReferenceID identifies a single use of a name in the tree.
type ReferenceID uint32

const (
	// NoReferenceID marks the absence of a reference.
	NoReferenceID ReferenceID = 0
)

// IsValid reports whether the reference ID refers to an allocated reference.
func (id ReferenceID) IsValid() bool { return id != NoReferenceID }
