package driver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"jsxform/internal/ast"
	"jsxform/internal/format"
	"jsxform/internal/moduleimports"
	"jsxform/internal/observ"
	"jsxform/internal/plan"
	"jsxform/internal/symbols"
	"jsxform/internal/trace"
	"jsxform/internal/transform"
)

type Options struct {
	Format format.Options
	Cache  *DiskCache
	// Progress receives per-file stage events. May be nil.
	Progress ProgressSink
	// Observer receives phase boundaries. May be nil.
	Observer PhaseObserver
}

// Result is the outcome of processing one plan file.
type Result struct {
	Path     string
	Name     string
	Output   []byte
	Inserted int
	// Entries is the registry content right before it was finalized.
	Entries []moduleimports.Entry
	Cached  bool
	Timing  observ.Report
	Err     error
}

// ProcessFile loads the plan at path, runs its rules over the program and
// renders the result.
func ProcessFile(ctx context.Context, path string, opts Options) (*Result, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "process_file", trace.CurrentSpan(ctx)).WithExtra("path", path)
	ctx = trace.WithSpan(ctx, span)
	defer span.End("")

	res := &Result{Path: path}
	timer := observ.NewTimer()
	phases := newPhaseRunner(timer, opts.Observer)

	var (
		data   []byte
		digest Digest
		p      *plan.Plan
	)
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	err := phases.run("load", func() (string, error) {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read plan: %w", err)
		}
		digest = planDigest(data, opts.Format)
		var payload Payload
		if ok, err := opts.Cache.Get(digest, &payload); err != nil {
			trace.Error(tracer, trace.ScopeFile, "cache_get", err)
		} else if ok {
			res.Cached = true
			res.Name = payload.Name
			res.Output = payload.Output
			res.Inserted = payload.Inserted
			res.Entries = entriesFromCache(payload.Entries)
			return "cached", nil
		}
		p, err = plan.Decode(path, bytes.NewReader(data))
		return "", err
	})
	if err != nil {
		return fail(res, opts, StageLoad, err)
	}
	if res.Cached {
		res.Timing = timer.Report()
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusCached})
		return res, nil
	}
	res.Name = p.Program.Name

	emit(opts.Progress, Event{File: path, Stage: StageTransform, Status: StatusWorking})
	var prog *ast.Program
	err = phases.run("transform", func() (string, error) {
		table := symbols.NewTable(symbols.Hints{Symbols: uint(len(p.Requests) + len(p.Program.Globals))}, nil)
		table.DeclareGlobals(p.Program.Globals...)
		prog = buildProgram(p)

		tr := transform.New(rulesFor(p)...)
		tr.BeforeFinalize = func(st *transform.State) { res.Entries = st.Imports.Entries() }
		n, err := tr.Run(ctx, prog, table)
		res.Inserted = n
		return fmt.Sprintf("%d inserted", n), err
	})
	if err != nil {
		return fail(res, opts, StageTransform, err)
	}

	emit(opts.Progress, Event{File: path, Stage: StagePrint, Status: StatusWorking})
	_ = phases.run("print", func() (string, error) {
		res.Output = format.PrintProgram(prog, opts.Format)
		return "", nil
	})

	if opts.Cache != nil {
		payload := &Payload{Name: res.Name, Output: res.Output, Inserted: res.Inserted, Entries: entriesToCache(res.Entries)}
		if err := opts.Cache.Put(digest, payload); err != nil {
			trace.Error(tracer, trace.ScopeFile, "cache_put", err)
		}
	}

	res.Timing = timer.Report()
	emit(opts.Progress, Event{File: path, Stage: StagePrint, Status: StatusDone, Elapsed: time.Duration(res.Timing.TotalMS * float64(time.Millisecond))})
	return res, nil
}

func fail(res *Result, opts Options, stage Stage, err error) (*Result, error) {
	err = fmt.Errorf("%s: %w", res.Path, err)
	res.Err = err
	emit(opts.Progress, Event{File: res.Path, Stage: stage, Status: StatusError, Err: err})
	return res, err
}

func buildProgram(p *plan.Plan) *ast.Program {
	b := ast.Synthetic()
	prog := &ast.Program{Body: make([]ast.Stmt, 0, len(p.Program.Body))}
	for _, line := range p.Program.Body {
		prog.Body = append(prog.Body, b.Verbatim(line))
	}
	return prog
}

// rulesFor builds one rule per distinct rule name. Each rule declares the
// bindings its requests introduce before handing them to the registry.
func rulesFor(p *plan.Plan) []transform.Rule {
	groups := p.Rules()
	rules := make([]transform.Rule, 0, len(groups))
	for _, g := range groups {
		rules = append(rules, transform.RuleFunc{
			RuleName: g.Name,
			Fn: func(_ context.Context, _ *ast.Program, st *transform.State) error {
				for _, req := range g.Requests {
					if err := applyRequest(st, req); err != nil {
						return err
					}
				}
				return nil
			},
		})
	}
	return rules
}

func applyRequest(st *transform.State, req plan.Request) error {
	kind, err := req.ImportKind()
	if err != nil {
		return err
	}
	var spec moduleimports.Specifier
	switch kind {
	case moduleimports.KindDefault:
		spec = moduleimports.NewSpecifier(req.Imported, "", st.DeclareImportBinding(req.Imported))
	default:
		spec = moduleimports.NewSpecifier(req.Imported, req.Local, st.DeclareImportBinding(req.LocalName()))
	}
	switch kind {
	case moduleimports.KindNamed:
		st.Imports.AddImport(req.Source, spec)
	case moduleimports.KindDefault:
		st.Imports.AddDefault(req.Source, spec)
	case moduleimports.KindRequire:
		st.Imports.AddRequire(req.Source, spec, req.Front)
	}
	return nil
}
