// internal/caseapp/app.go
package caseapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"curate-core/ndjson"
	"curate-core/textcase"
	"curate/internal/appcore"
	"curate/internal/casecli"
	"curate/internal/clibase"
	"curate/internal/version"
	"curate/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := casecli.NewFlagSet("curate-titlecase")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = casecli.ParseArgs(fs, []string{"-h"})
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

	opts, err := casecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			casecli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "curate-titlecase version %s\n", version.Version)
		flushErr := outw.Flush()
		if writers.IsBrokenPipe(flushErr) {
			return 0
		} else if flushErr != nil {
			fmt.Fprintln(stderr, flushErr)
			return 3
		}
		return 0
	}

	titler := textcase.New()
	transform := func(rec *ndjson.Record) error {
		for _, field := range opts.Fields {
			v, ok := rec.StringValue(field)
			if !ok || v == "" {
				continue
			}
			rec.SetString(field, titler.Title(v))
		}
		return nil
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{Input: opts.Input}, transform)
}
