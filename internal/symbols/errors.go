package symbols

import "fmt"

// UnresolvedBindingError reports a name that has no binding in the scope it
// was looked up in.
type UnresolvedBindingError struct {
	Name  string
	Scope ScopeID
}

func (e *UnresolvedBindingError) Error() string {
	return fmt.Sprintf("unresolved binding %q in scope %d", e.Name, e.Scope)
}
