// Package plan loads TOML plan files. A plan names a program, the ambient
// globals of its root scope, and the import requests that rewrite rules
// make against it.
package plan

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"

	"jsxform/internal/moduleimports"
)

var (
	ErrUnknownKind     = errors.New("unknown request kind")
	ErrMissingSource   = errors.New("missing source")
	ErrMissingImported = errors.New("missing imported name")
	ErrFrontNotRequire = errors.New("front is only valid for require requests")
)

// DefaultRule names the rule of requests that do not set one.
const DefaultRule = "main"

type Plan struct {
	Path     string    `toml:"-"`
	Program  Program   `toml:"program"`
	Requests []Request `toml:"request"`
}

type Program struct {
	Name    string   `toml:"name"`
	Globals []string `toml:"globals"`
	Body    []string `toml:"body"`
}

// Request is one import request issued by a rule. Requests of the same rule
// run together, so import order follows the order in which rules first
// appear, not the order of requests in the file.
type Request struct {
	Rule     string `toml:"rule"`
	Kind     string `toml:"kind"`
	Source   string `toml:"source"`
	Imported string `toml:"imported"`
	Local    string `toml:"local"`
	Front    bool   `toml:"front"`
}

// ImportKind maps the textual kind to the registry kind.
func (r Request) ImportKind() (moduleimports.ImportKind, error) {
	switch strings.ToLower(strings.TrimSpace(r.Kind)) {
	case "named", "":
		return moduleimports.KindNamed, nil
	case "default":
		return moduleimports.KindDefault, nil
	case "require":
		return moduleimports.KindRequire, nil
	default:
		return 0, fmt.Errorf("%w %q (expected: named|default|require)", ErrUnknownKind, r.Kind)
	}
}

// LocalName is the binding the request introduces.
func (r Request) LocalName() string {
	if r.Local != "" {
		return r.Local
	}
	return r.Imported
}

// Load reads and validates the plan at path.
func Load(path string) (*Plan, error) {
	var p Plan
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return finish(path, &p, meta)
}

// Decode reads a plan from r. name is used in error messages.
func Decode(name string, r io.Reader) (*Plan, error) {
	var p Plan
	meta, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	return finish(name, &p, meta)
}

func finish(path string, p *Plan, meta toml.MetaData) (*Plan, error) {
	if !meta.IsDefined("program") {
		return nil, fmt.Errorf("%s: missing [program]", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	p.Path = path
	p.normalize()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (p *Plan) normalize() {
	p.Program.Name = norm.NFC.String(strings.TrimSpace(p.Program.Name))
	for i, g := range p.Program.Globals {
		p.Program.Globals[i] = norm.NFC.String(strings.TrimSpace(g))
	}
	for i := range p.Requests {
		r := &p.Requests[i]
		r.Rule = norm.NFC.String(strings.TrimSpace(r.Rule))
		if r.Rule == "" {
			r.Rule = DefaultRule
		}
		r.Source = norm.NFC.String(r.Source)
		r.Imported = norm.NFC.String(strings.TrimSpace(r.Imported))
		r.Local = norm.NFC.String(strings.TrimSpace(r.Local))
	}
}

// Validate checks every request. Errors name the offending request by
// position.
func (p *Plan) Validate() error {
	for i, r := range p.Requests {
		kind, err := r.ImportKind()
		if err != nil {
			return fmt.Errorf("request %d: %w", i+1, err)
		}
		if r.Source == "" {
			return fmt.Errorf("request %d: %w", i+1, ErrMissingSource)
		}
		if r.Imported == "" {
			return fmt.Errorf("request %d: %w", i+1, ErrMissingImported)
		}
		if r.Front && kind != moduleimports.KindRequire {
			return fmt.Errorf("request %d: %w", i+1, ErrFrontNotRequire)
		}
	}
	return nil
}

// Rules groups requests by rule name, in order of first appearance.
func (p *Plan) Rules() []RuleRequests {
	var out []RuleRequests
	index := make(map[string]int)
	for _, r := range p.Requests {
		i, ok := index[r.Rule]
		if !ok {
			i = len(out)
			index[r.Rule] = i
			out = append(out, RuleRequests{Name: r.Rule})
		}
		out[i].Requests = append(out[i].Requests, r)
	}
	return out
}

type RuleRequests struct {
	Name     string
	Requests []Request
}
