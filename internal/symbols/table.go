package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"jsxform/internal/source"
)

// Hints provide optional capacity suggestions for the symbol table arenas.
type Hints struct{ Scopes, Symbols, References uint }

// Table aggregates symbol-related arenas and shared resources for one program.
type Table struct {
	Scopes     *Scopes
	Symbols    *Symbols
	References *References
	Strings    *source.Interner
	root       ScopeID
}

// NewTable builds a fresh table with its root scope already allocated.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	refCap, err := safecast.Conv[uint32](h.References)
	if err != nil {
		panic(fmt.Errorf("reference capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	t := &Table{
		Scopes:     NewScopes(scopeCap),
		Symbols:    NewSymbols(symCap),
		References: NewReferences(refCap),
		Strings:    strings,
	}
	t.root = t.Scopes.New(ScopeRoot, NoScopeID, source.NoSpan)
	return t
}

// Root returns the program-level scope.
func (t *Table) Root() ScopeID { return t.root }

// Declare binds name in scope. If the scope already binds the name, the
// existing symbol is returned together with false.
func (t *Table) Declare(scope ScopeID, name string, kind SymbolKind, flags SymbolFlags, span source.Span) (SymbolID, bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		panic(fmt.Sprintf("symbols.Declare: invalid scope %d", scope))
	}
	nameID := t.Strings.Intern(name)
	if existing, ok := sc.NameIndex[nameID]; ok {
		return existing, false
	}
	id := t.Symbols.New(&Symbol{
		Name:  nameID,
		Kind:  kind,
		Scope: scope,
		Span:  span,
		Flags: flags,
	})
	sc.NameIndex[nameID] = id
	sc.Symbols = append(sc.Symbols, id)
	return id, true
}

// RootBinding resolves name in the root scope only.
func (t *Table) RootBinding(name string) (SymbolID, error) {
	nameID, ok := t.Strings.Find(name)
	if ok {
		if sym, found := t.Scopes.Get(t.root).NameIndex[nameID]; found {
			return sym, nil
		}
	}
	return NoSymbolID, &UnresolvedBindingError{Name: name, Scope: t.root}
}

// CreateReference records a use of sym under name and links it back to the symbol.
func (t *Table) CreateReference(span source.Span, name string, sym SymbolID, flags ReferenceFlags) ReferenceID {
	id := t.References.New(Reference{
		Name:   t.Strings.Intern(name),
		Symbol: sym,
		Span:   span,
		Flags:  flags,
	})
	if s := t.Symbols.Get(sym); s != nil {
		s.References = append(s.References, id)
	}
	return id
}

// Name returns the declared name of sym, or "" for an unknown symbol.
func (t *Table) Name(sym SymbolID) string {
	s := t.Symbols.Get(sym)
	if s == nil {
		return ""
	}
	name, _ := t.Strings.Lookup(s.Name)
	return name
}
