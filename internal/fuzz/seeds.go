package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 16 << 10
	maxFuzzInput = 64 << 10
)

var builtinPlans = []string{
	"[program]\n",
	"[program]\nglobals = [\"require\"]\n[[request]]\nkind = \"require\"\nsource = \"core-js\"\nimported = \"corejs\"\nfront = true\n",
	"[program]\nbody = [\"main();\"]\n[[request]]\nsource = \"react/jsx-runtime\"\nimported = \"jsx\"\n[[request]]\nsource = \"react/jsx-runtime\"\nimported = \"jsxs\"\nlocal = \"_jsxs\"\n",
	"[program]\n[[request]]\nkind = \"default\"\nsource = \"helper\"\nimported = \"h\"\n[[request]]\nkind = \"default\"\nsource = \"helper\"\nimported = \"h\"\n",
	"[program]\n[[request]]\nkind = \"dynamic\"\nsource = \"x\"\nimported = \"x\"\n",
}

func addPlanSeeds(f *testing.F) {
	for _, p := range builtinPlans {
		f.Add([]byte(p))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every *.toml file under testdata/ when present.
func addTestdataSeeds(f *testing.F) {
	root := "testdata"
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".toml" {
			return nil
		}
		// #nosec G304 -- path comes from the testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
