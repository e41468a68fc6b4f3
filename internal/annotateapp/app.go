// internal/annotateapp/app.go
package annotateapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"curate-core/annotate"
	"curate-core/ndjson"
	"curate/internal/annotatecli"
	"curate/internal/appcore"
	"curate/internal/clibase"
	"curate/internal/version"
	"curate/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := annotatecli.NewFlagSet("curate-annotate")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = annotatecli.ParseArgs(fs, []string{"-h"})
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

	opts, err := annotatecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			annotatecli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "curate-annotate version %s\n", version.Version)
		flushErr := outw.Flush()
		if writers.IsBrokenPipe(flushErr) {
			return 0
		} else if flushErr != nil {
			fmt.Fprintln(stderr, flushErr)
			return 3
		}
		return 0
	}

	tab, err := annotate.LoadTSV(opts.AnnotationsFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	transform := func(rec *ndjson.Record) error {
		id, ok := rec.StringValue(opts.IDField)
		if !ok || id == "" {
			return nil
		}
		for _, a := range tab.For(id) {
			rec.SetString(a.Field, a.Value)
		}
		return nil
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{Input: opts.Input}, transform)
}
