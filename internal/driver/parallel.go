package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"jsxform/internal/trace"
)

// ListPlans returns the sorted *.toml files under dir.
func ListPlans(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".toml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ProcessFiles runs ProcessFile over paths with at most jobs files in
// flight. Every file gets its own symbol table and registry. Per-file
// failures are reported in Result.Err; the returned error is only set when
// ctx is cancelled.
func ProcessFiles(ctx context.Context, paths []string, jobs int, opts Options) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "process_files", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)
	defer span.End("")

	for _, path := range paths {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	// indices are unique per goroutine, so no mutex is needed
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Path: path, Err: err}
				return err
			}
			res, _ := ProcessFile(gctx, path, opts)
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
