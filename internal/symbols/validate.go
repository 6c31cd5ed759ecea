package symbols

import (
	"errors"
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// Validate walks internal arenas checking structural invariants. Returns nil if
// everything is consistent; otherwise aggregates all detected issues.
func (t *Table) Validate() error {
	var errs []error

	for idx := 1; idx <= t.Scopes.Len(); idx++ {
		scopeID, err := toScopeID(idx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scope := t.Scopes.data[idx]
		if scope.Kind == ScopeInvalid {
			errs = append(errs, fmt.Errorf("scope %d has invalid kind", scopeID))
		}
		if scope.Parent.IsValid() {
			if int(scope.Parent) >= len(t.Scopes.data) || scope.Parent == scopeID {
				errs = append(errs, fmt.Errorf("scope %d has invalid parent %d", scopeID, scope.Parent))
			} else if !slices.Contains(t.Scopes.data[scope.Parent].Children, scopeID) {
				errs = append(errs, fmt.Errorf("scope %d parent %d missing backlink", scopeID, scope.Parent))
			}
		}
		for name, id := range scope.NameIndex {
			if !slices.Contains(scope.Symbols, id) {
				errs = append(errs, fmt.Errorf("scope %d name index %d references missing symbol %d", scopeID, name, id))
			}
		}
		if len(scope.NameIndex) != len(scope.Symbols) {
			errs = append(errs, fmt.Errorf("scope %d has %d symbols but %d indexed names", scopeID, len(scope.Symbols), len(scope.NameIndex)))
		}
	}

	for idx := 1; idx <= t.Symbols.Len(); idx++ {
		symbolID, err := toSymbolID(idx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		symbol := t.Symbols.data[idx]
		if !symbol.Scope.IsValid() || int(symbol.Scope) >= len(t.Scopes.data) {
			errs = append(errs, fmt.Errorf("symbol %d has invalid scope %d", symbolID, symbol.Scope))
			continue
		}
		if !slices.Contains(t.Scopes.data[symbol.Scope].Symbols, symbolID) {
			errs = append(errs, fmt.Errorf("symbol %d is missing from scope %d list", symbolID, symbol.Scope))
		}
		for _, ref := range symbol.References {
			r := t.References.Get(ref)
			if r == nil || r.Symbol != symbolID {
				errs = append(errs, fmt.Errorf("symbol %d lists foreign reference %d", symbolID, ref))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

func toScopeID(idx int) (ScopeID, error) {
	value, err := safecast.Conv[uint32](idx)
	if err != nil {
		return NoScopeID, fmt.Errorf("scope index %d overflow: %w", idx, err)
	}
	return ScopeID(value), nil
}

func toSymbolID(idx int) (SymbolID, error) {
	value, err := safecast.Conv[uint32](idx)
	if err != nil {
		return NoSymbolID, fmt.Errorf("symbol index %d overflow: %w", idx, err)
	}
	return SymbolID(value), nil
}
