package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jsxform/internal/driver"
	"jsxform/internal/format"
	"jsxform/internal/observ"
)

var importsCmd = &cobra.Command{
	Use:   "imports [flags] <plan.toml|dir>...",
	Short: "Apply import plans and print the rewritten programs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImports,
}

func init() {
	importsCmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	importsCmd.Flags().Bool("cache", false, "reuse rendered output from the disk cache")
	importsCmd.Flags().Bool("clear-cache", false, "drop the disk cache before running")
	importsCmd.Flags().String("quote", "double", "string quote style (double|single)")
	importsCmd.Flags().Bool("no-semicolons", false, "omit statement terminators")
	importsCmd.Flags().Int("line-width", 0, "wrap named import clauses wider than this (0=never)")
	importsCmd.Flags().Bool("explain", false, "print the import entries of each program instead of the program")
	importsCmd.Flags().String("out", "", "write each program to <out>/<program name> instead of stdout")
}

type importsOptions struct {
	jobs       int
	cache      bool
	clearCache bool
	explain    bool
	outDir     string
	quiet      bool
	timings    bool
	ui         uiMode
	format     format.Options
}

func readImportsOptions(cmd *cobra.Command) (importsOptions, error) {
	var opts importsOptions
	var err error
	flags := cmd.Flags()
	if opts.jobs, err = flags.GetInt("jobs"); err != nil {
		return opts, err
	}
	if opts.cache, err = flags.GetBool("cache"); err != nil {
		return opts, err
	}
	if opts.clearCache, err = flags.GetBool("clear-cache"); err != nil {
		return opts, err
	}
	if opts.explain, err = flags.GetBool("explain"); err != nil {
		return opts, err
	}
	if opts.outDir, err = flags.GetString("out"); err != nil {
		return opts, err
	}
	quote, err := flags.GetString("quote")
	if err != nil {
		return opts, err
	}
	switch strings.ToLower(quote) {
	case "double", "":
		opts.format.Quote = format.QuoteDouble
	case "single":
		opts.format.Quote = format.QuoteSingle
	default:
		return opts, fmt.Errorf("invalid --quote value %q (expected double|single)", quote)
	}
	if opts.format.OmitSemicolons, err = flags.GetBool("no-semicolons"); err != nil {
		return opts, err
	}
	if opts.format.LineWidth, err = flags.GetInt("line-width"); err != nil {
		return opts, err
	}

	root := cmd.Root().PersistentFlags()
	if opts.quiet, err = root.GetBool("quiet"); err != nil {
		return opts, err
	}
	if opts.timings, err = root.GetBool("timings"); err != nil {
		return opts, err
	}
	uiFlag, err := root.GetString("ui")
	if err != nil {
		return opts, err
	}
	if opts.ui, err = readUIMode(uiFlag); err != nil {
		return opts, err
	}
	return opts, nil
}

func runImports(cmd *cobra.Command, args []string) error {
	opts, err := readImportsOptions(cmd)
	if err != nil {
		return err
	}
	paths, err := collectPlans(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no plan files found in %s", strings.Join(args, ", "))
	}

	dopts := driver.Options{Format: opts.format}
	if opts.cache || opts.clearCache {
		cache, err := driver.OpenDiskCache("jsxform")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if opts.clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
		}
		if opts.cache {
			dopts.Cache = cache
		}
	}

	ctx := cmd.Context()
	var results []driver.Result
	if !opts.quiet && len(paths) > 1 && shouldUseTUI(opts.ui) {
		results, err = runWithUI(ctx, "jsxform imports", paths, opts.jobs, dopts)
	} else {
		results, err = driver.ProcessFiles(ctx, paths, opts.jobs, dopts)
	}
	if err != nil {
		return err
	}

	return reportResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, opts)
}

// collectPlans expands directories into the plan files they contain.
func collectPlans(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := driver.ListPlans(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}

func reportResults(out, errOut io.Writer, results []driver.Result, opts importsOptions) error {
	header := color.New(color.FgCyan, color.Bold)
	var (
		failed  int
		total   observ.Report
		written = make(map[string]string)
	)
	for i := range results {
		res := &results[i]
		if res.Err != nil {
			failed++
			fmt.Fprintf(errOut, "%s %v\n", color.RedString("error:"), res.Err)
			continue
		}
		total = total.Merge(res.Timing)

		switch {
		case opts.explain:
			if len(results) > 1 {
				header.Fprintf(out, "%s\n", res.Path)
			}
			writeExplainTable(out, res.Entries)
		case opts.outDir != "":
			name, err := programFileName(res)
			if err == nil {
				if prev, dup := written[name]; dup {
					err = fmt.Errorf("%s: program %q is already written by %s", res.Path, name, prev)
				}
			}
			if err != nil {
				failed++
				fmt.Fprintf(errOut, "%s %v\n", color.RedString("error:"), err)
				continue
			}
			written[name] = res.Path
			if err := writeProgram(opts.outDir, name, res.Output); err != nil {
				return err
			}
		default:
			if len(results) > 1 {
				header.Fprintf(out, "// %s\n", res.Path)
			}
			if _, err := out.Write(res.Output); err != nil {
				return err
			}
		}
	}

	if opts.timings {
		fmt.Fprint(errOut, total.Summary())
	}
	if !opts.quiet && len(results) > 1 {
		cached := 0
		for _, res := range results {
			if res.Cached {
				cached++
			}
		}
		fmt.Fprintf(errOut, "%d files, %d failed, %d cached\n", len(results), failed, cached)
	}
	if failed > 0 {
		return errors.New("some plans failed")
	}
	return nil
}

// programFileName returns the output path of res relative to --out. Names
// that would leave the output directory are rejected.
func programFileName(res *driver.Result) (string, error) {
	name := res.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path)) + ".js"
	}
	local := filepath.Clean(filepath.FromSlash(name))
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%s: program name %q escapes the output directory", res.Path, name)
	}
	return local, nil
}

func writeProgram(dir, name string, output []byte) error {
	target := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, output, 0o644)
}
