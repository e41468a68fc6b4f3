// internal/datesapp/app.go
package datesapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"curate-core/dates"
	"curate-core/ndjson"
	"curate/internal/appcore"
	"curate/internal/clibase"
	"curate/internal/datescli"
	"curate/internal/diag"
	"curate/internal/version"
	"curate/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := datescli.NewFlagSet("curate-dates")
	fs.SetOutput(io.Discard) // silence default flag pkg

	// No args => register flags then print usage
	if len(argv) == 0 {
		_, _ = datescli.ParseArgs(fs, []string{"-h"})
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

	opts, err := datescli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			datescli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "curate-dates version %s\n", version.Version)
		flushErr := outw.Flush()
		if writers.IsBrokenPipe(flushErr) {
			return 0
		} else if flushErr != nil {
			fmt.Fprintln(stderr, flushErr)
			return 3
		}
		return 0
	}

	norm, err := dates.New(opts.Formats)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	warn := diag.New(stderr, opts.Quiet)
	transform := func(rec *ndjson.Record) error {
		for _, field := range opts.Fields {
			v, ok := rec.StringValue(field)
			if !ok || v == "" {
				continue
			}
			out, matched := norm.Normalize(v)
			if !matched {
				warn.Warn("date matched no expected format, passing through",
					"field", field, "value", v, "formats", opts.Formats)
				continue
			}
			rec.SetString(field, out)
		}
		return nil
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{Input: opts.Input}, transform)
}
