package plan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"jsxform/internal/moduleimports"
)

const samplePlan = `
[program]
name = "entry.js"
globals = ["require"]
body = ["main();"]

[[request]]
rule = "jsx"
source = "react/jsx-runtime"
imported = "jsx"

[[request]]
rule = "polyfills"
kind = "require"
source = "core-js"
imported = "corejs"
front = true

[[request]]
rule = "jsx"
kind = "named"
source = "react/jsx-runtime"
imported = "jsxs"
local = "_jsxs"
`

func writePlan(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSamplePlan(t *testing.T) {
	p, err := Load(writePlan(t, samplePlan))
	require.NoError(t, err)
	require.Equal(t, "entry.js", p.Program.Name)
	require.Equal(t, []string{"require"}, p.Program.Globals)
	require.Equal(t, []string{"main();"}, p.Program.Body)
	require.Len(t, p.Requests, 3)

	kind, err := p.Requests[1].ImportKind()
	require.NoError(t, err)
	require.Equal(t, moduleimports.KindRequire, kind)
	require.True(t, p.Requests[1].Front)
	require.Equal(t, "_jsxs", p.Requests[2].LocalName())
	require.Equal(t, "jsx", p.Requests[0].LocalName())
}

func TestRulesGroupInFirstAppearanceOrder(t *testing.T) {
	p, err := Decode("inline", strings.NewReader(samplePlan))
	require.NoError(t, err)
	rules := p.Rules()
	require.Len(t, rules, 2)
	require.Equal(t, "jsx", rules[0].Name)
	require.Len(t, rules[0].Requests, 2)
	require.Equal(t, "polyfills", rules[1].Name)
}

func TestRulesKeepInterleavedRequestsTogether(t *testing.T) {
	p, err := Decode("inline", strings.NewReader(`
[program]
[[request]]
rule = "r1"
source = "a"
imported = "one"
[[request]]
rule = "r2"
source = "b"
imported = "two"
[[request]]
rule = "r1"
source = "c"
imported = "three"
`))
	require.NoError(t, err)
	rules := p.Rules()
	require.Len(t, rules, 2)
	require.Equal(t, "r1", rules[0].Name)
	require.Equal(t, []string{"one", "three"}, []string{rules[0].Requests[0].Imported, rules[0].Requests[1].Imported})
	require.Equal(t, "r2", rules[1].Name)
	require.Equal(t, "two", rules[1].Requests[0].Imported)
}

func TestDefaultRuleAndKind(t *testing.T) {
	p, err := Decode("inline", strings.NewReader(`
[program]
[[request]]
source = "lib"
imported = "a"
`))
	require.NoError(t, err)
	require.Equal(t, DefaultRule, p.Requests[0].Rule)
	kind, err := p.Requests[0].ImportKind()
	require.NoError(t, err)
	require.Equal(t, moduleimports.KindNamed, kind)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
		msg  string
	}{
		{
			name: "missing program",
			body: "[[request]]\nsource = \"x\"\nimported = \"x\"\n",
			msg:  "missing [program]",
		},
		{
			name: "unknown kind",
			body: "[program]\n[[request]]\nkind = \"dynamic\"\nsource = \"x\"\nimported = \"x\"\n",
			want: ErrUnknownKind,
		},
		{
			name: "missing source",
			body: "[program]\n[[request]]\nimported = \"x\"\n",
			want: ErrMissingSource,
		},
		{
			name: "missing imported",
			body: "[program]\n[[request]]\nsource = \"x\"\n",
			want: ErrMissingImported,
		},
		{
			name: "front on named",
			body: "[program]\n[[request]]\nsource = \"x\"\nimported = \"x\"\nfront = true\n",
			want: ErrFrontNotRequire,
		},
		{
			name: "unknown key",
			body: "[program]\nentry = \"x\"\n",
			msg:  "unknown key",
		},
		{
			name: "bad toml",
			body: "[program\n",
			msg:  "failed to parse TOML",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writePlan(t, tc.body)
			_, err := Load(path)
			require.Error(t, err)
			require.Contains(t, err.Error(), path)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
			}
			if tc.msg != "" {
				require.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestNamesAreNFCNormalized(t *testing.T) {
	// "e" followed by a combining acute accent.
	decomposed := "cafe\u0301"
	p, err := Decode("inline", strings.NewReader("[program]\n[[request]]\nsource = \""+decomposed+"\"\nimported = \""+decomposed+"\"\n"))
	require.NoError(t, err)
	require.Equal(t, "caf\u00e9", p.Requests[0].Source)
	require.Equal(t, "caf\u00e9", p.Requests[0].Imported)
}
