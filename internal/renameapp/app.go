// internal/renameapp/app.go
package renameapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"curate-core/fields"
	"curate-core/ndjson"
	"curate/internal/appcore"
	"curate/internal/clibase"
	"curate/internal/diag"
	"curate/internal/renamecli"
	"curate/internal/version"
	"curate/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := renamecli.NewFlagSet("curate-rename")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = renamecli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		flushErr := outw.Flush()
		if writers.IsBrokenPipe(flushErr) {
			return 0
		} else if flushErr != nil {
			fmt.Fprintln(stderr, flushErr)
			return 3
		}
		return 0
	}

	opts, err := renamecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			renamecli.PrintExamples(outw)
			flushErr := outw.Flush()
			if writers.IsBrokenPipe(flushErr) {
				return 0
			} else if flushErr != nil {
				fmt.Fprintln(stderr, flushErr)
				return 3
			}
			return 0
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			flushErr := outw.Flush()
			if writers.IsBrokenPipe(flushErr) {
				return 0
			} else if flushErr != nil {
				fmt.Fprintln(stderr, flushErr)
				return 3
			}
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		flushErr := outw.Flush()
		if writers.IsBrokenPipe(flushErr) {
			return 0
		} else if flushErr != nil {
			fmt.Fprintln(stderr, flushErr)
			return 3
		}
		return 2
	}
	if opts.Version {
		fmt.Fprintf(outw, "curate-rename version %s\n", version.Version)
		flushErr := outw.Flush()
		if writers.IsBrokenPipe(flushErr) {
			return 0
		} else if flushErr != nil {
			fmt.Fprintln(stderr, flushErr)
			return 3
		}
		return 0
	}

	rules, err := fields.ParseRules(opts.FieldMaps)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	warn := diag.New(stderr, opts.Quiet)
	transform := func(rec *ndjson.Record) error {
		for _, rule := range rules {
			if !rec.Has(rule.Old) {
				continue
			}
			if rec.Has(rule.New) {
				if !opts.Force {
					warn.Warn("rename target already exists, skipping",
						"old", rule.Old, "new", rule.New)
					continue
				}
				rec.Delete(rule.New)
			}
			rec.Rename(rule.Old, rule.New)
		}
		return nil
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{Input: opts.Input}, transform)
}
