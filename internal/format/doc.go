// Package format prints JavaScript statements produced by transforms.
//
// It covers the node kinds in internal/ast: import declarations, variable
// declarations, calls, identifiers, string literals and verbatim text.
// Dependencies: internal/ast.
package format
