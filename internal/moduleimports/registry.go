// Package moduleimports collects import requests issued by independent
// rewrite rules during one transformation pass and turns them into the
// import and require statements that are prepended to the program.
//
// Named imports and requires of the same source are merged into a single
// entry. Default imports never merge: every AddDefault call yields its own
// statement. Entries keep the order in which they were first introduced,
// except that AddRequire may move its entry to the front.
package moduleimports

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"jsxform/internal/ast"
	"jsxform/internal/source"
	"jsxform/internal/symbols"
	"jsxform/internal/trace"
)

// Resolver is the scope collaborator used by require synthesis.
// *symbols.Table satisfies it.
type Resolver interface {
	RootBinding(name string) (symbols.SymbolID, error)
	CreateReference(span source.Span, name string, sym symbols.SymbolID, flags symbols.ReferenceFlags) symbols.ReferenceID
}

// key identifies an entry. seq is zero for named and require keys and unique
// for every default key, so default keys never collide in the index.
type key struct {
	kind   ImportKind
	source string
	seq    uint64
}

type entry struct {
	key        key
	specifiers []Specifier
}

// Entry is a read-only view of one registry entry.
type Entry struct {
	Kind       ImportKind
	Source     string
	Specifiers []Specifier
}

type Options struct {
	// Builder constructs the synthesized nodes. Defaults to ast.Synthetic().
	Builder *ast.Builder
	Tracer  trace.Tracer
}

// Registry is created once per pass and shared by every rule of that pass.
// It is not meant for concurrent use: overlapping calls panic with a
// *BorrowError instead of blocking.
type Registry struct {
	b      *ast.Builder
	tracer trace.Tracer

	borrow   borrow
	entries  []*entry
	index    map[key]*entry
	defaults uint64
}

func New(opts Options) *Registry {
	if opts.Builder == nil {
		opts.Builder = ast.Synthetic()
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	return &Registry{
		b:      opts.Builder,
		tracer: opts.Tracer,
		index:  make(map[key]*entry),
	}
}

// AddDefault registers `import <imported> from "<src>"`. It always creates a
// new entry, even when a default import of src is already registered.
func (r *Registry) AddDefault(src string, spec Specifier) {
	r.borrow.acquire("add_default")
	defer r.borrow.release()

	r.defaults++
	r.insert(key{kind: KindDefault, source: src, seq: r.defaults}, spec)
	r.note("add_default", src, spec, false)
}

// AddImport registers `import { <imported> as <local> } from "<src>"`,
// merging into an existing named import of src.
func (r *Registry) AddImport(src string, spec Specifier) {
	r.borrow.acquire("add_import")
	defer r.borrow.release()

	_, merged := r.insert(key{kind: KindNamed, source: src}, spec)
	r.note("add_import", src, spec, merged)
}

// AddRequire registers `var <local> = require("<src>")`. Requests for the
// same src share one entry, but only the first specifier of that entry is
// ever synthesized; later ones are dropped at Finalize. With front set, the
// entry is moved ahead of every other entry.
func (r *Registry) AddRequire(src string, spec Specifier, front bool) {
	r.borrow.acquire("add_require")
	defer r.borrow.release()

	e, merged := r.insert(key{kind: KindRequire, source: src}, spec)
	if front {
		r.moveToFront(e)
	}
	r.note("add_require", src, spec, merged, "front", strconv.FormatBool(front))
}

// insert appends spec to the entry for k, creating the entry at the end of
// the order if needed. It reports whether an existing entry was reused.
func (r *Registry) insert(k key, spec Specifier) (*entry, bool) {
	if e, ok := r.index[k]; ok {
		e.specifiers = append(e.specifiers, spec)
		return e, true
	}
	e := &entry{key: k, specifiers: []Specifier{spec}}
	r.index[k] = e
	r.entries = append(r.entries, e)
	return e, false
}

func (r *Registry) moveToFront(e *entry) {
	pos := slices.Index(r.entries, e)
	if pos <= 0 {
		return
	}
	copy(r.entries[1:pos+1], r.entries[:pos])
	r.entries[0] = e
}

func (r *Registry) note(op, src string, spec Specifier, merged bool, kv ...string) {
	if !r.tracer.Enabled() {
		return
	}
	kv = append(kv, "imported", spec.Imported, "local", spec.LocalName(), "merged", strconv.FormatBool(merged))
	trace.Point(r.tracer, trace.ScopeNode, op, src, kv...)
}

// Len reports the number of pending entries.
func (r *Registry) Len() int {
	r.borrow.acquire("len")
	defer r.borrow.release()
	return len(r.entries)
}

// Entries returns the pending entries in output order without draining them.
func (r *Registry) Entries() []Entry {
	r.borrow.acquire("entries")
	defer r.borrow.release()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, Entry{
			Kind:       e.key.kind,
			Source:     e.key.source,
			Specifiers: slices.Clone(e.specifiers),
		})
	}
	return out
}

// Finalize drains the registry and returns one statement per entry, in
// order. The registry is empty afterwards, so a second call returns no
// statements; adds made after Finalize start a new accumulation.
//
// An error is returned when a require entry is present and res has no root
// binding for "require". The registry is drained even then.
func (r *Registry) Finalize(ctx context.Context, res Resolver) ([]ast.Stmt, error) {
	r.borrow.acquire("finalize")
	defer r.borrow.release()

	entries := r.entries
	r.entries = nil
	r.index = make(map[key]*entry)

	span := trace.Begin(r.tracer, trace.ScopePass, "module_imports", trace.CurrentSpan(ctx))
	outcome := "panicked"
	defer func() { span.End(outcome) }()

	stmts := make([]ast.Stmt, 0, len(entries))
	for _, e := range entries {
		var (
			stmt ast.Stmt
			err  error
		)
		switch e.key.kind {
		case KindNamed:
			stmt = r.namedImport(e.key.source, e.specifiers)
		case KindDefault:
			stmt = r.defaultImport(e.key.source, e.specifiers)
		case KindRequire:
			stmt, err = r.require(e.key.source, e.specifiers, res)
		default:
			panic(fmt.Sprintf("moduleimports: entry with invalid kind %d", e.key.kind))
		}
		if err != nil {
			trace.Error(r.tracer, trace.ScopePass, "module_imports", err)
			outcome = "failed"
			return nil, fmt.Errorf("require %q: %w", e.key.source, err)
		}
		stmts = append(stmts, stmt)
	}
	span.WithExtra("statements", strconv.Itoa(len(stmts)))
	outcome = ""
	return stmts, nil
}
