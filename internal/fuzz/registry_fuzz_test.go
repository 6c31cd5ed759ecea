package fuzztests

import (
	"context"
	"testing"

	"jsxform/internal/moduleimports"
	"jsxform/internal/source"
	"jsxform/internal/symbols"
	"jsxform/internal/testkit"
)

var (
	fuzzSources = []string{"react", "core-js", "lib", "./local"}
	fuzzNames   = []string{"a", "b", "c", "jsx"}
)

// FuzzRegistryOps decodes input as a sequence of three-byte add operations
// and checks the finalized output against the expected entry count.
func FuzzRegistryOps(f *testing.F) {
	f.Add([]byte{0, 0, 0})
	f.Add([]byte{0, 0, 0, 0, 0, 1, 1, 1, 2, 1, 1, 2})
	f.Add([]byte{2, 1, 0x80, 2, 1, 0x81, 0, 2, 3})
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		table := symbols.NewTable(symbols.Hints{}, nil)
		table.DeclareGlobals(symbols.CommonJSGlobals...)
		reg := moduleimports.New(moduleimports.Options{})

		type key struct {
			kind moduleimports.ImportKind
			src  string
		}
		seen := make(map[key]bool)
		want := 0
		for i := 0; i+2 < len(input); i += 3 {
			kind := moduleimports.ImportKind(input[i]%3) + moduleimports.KindNamed
			src := fuzzSources[int(input[i+1])%len(fuzzSources)]
			name := fuzzNames[int(input[i+2]&0x7f)%len(fuzzNames)]
			front := input[i+2]&0x80 != 0

			sym, _ := table.Declare(table.Root(), name, symbols.SymbolImport, symbols.SymbolFlagSynthesized, source.NoSpan)
			spec := moduleimports.NewSpecifier(name, "", sym)
			switch kind {
			case moduleimports.KindNamed:
				reg.AddImport(src, spec)
			case moduleimports.KindDefault:
				reg.AddDefault(src, spec)
				want++
				continue
			case moduleimports.KindRequire:
				reg.AddRequire(src, spec, front)
			}
			k := key{kind: kind, src: src}
			if !seen[k] {
				seen[k] = true
				want++
			}
		}

		if reg.Len() != want {
			t.Fatalf("registry holds %d entries, want %d", reg.Len(), want)
		}
		stmts, err := reg.Finalize(context.Background(), table)
		if err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if len(stmts) != want {
			t.Fatalf("got %d statements, want %d", len(stmts), want)
		}
		if reg.Len() != 0 {
			t.Fatalf("registry not drained")
		}
		if err := testkit.CheckSynthesized(stmts, table); err != nil {
			t.Fatalf("invariant violated: %v", err)
		}
	})
}
