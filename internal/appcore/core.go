// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"curate-core/ndjson"
	"curate/internal/linewriter"
	"curate/internal/writers"
)

// Options configure one run of the record-stream driver.
type Options struct {
	Input string // file path or "-" for stdin
}

// Transform rewrites one record in place. Returning an error aborts the
// run: transforms handle messy data themselves (warn and pass through) and
// reserve errors for contract violations.
type Transform func(*ndjson.Record) error

// Run drives a per-record transform over an NDJSON stream: one output line
// per input line, order preserved, nothing buffered beyond a single record
// and the write-side channel. Exit codes follow the toolkit convention:
// 0 ok, 2 config error, 3 runtime error, 130 canceled.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, transform Transform) int {
	in, err := ndjson.Open(o.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = in.Close() }()

	outw := bufio.NewWriterSize(stdout, 64<<10)
	lines, writeErr := linewriter.Start(outw, 64, writers.IsBrokenPipe)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	lineNo := 0
	serr := ndjson.ScanLines(ctx, in, func(line string) error {
		lineNo++
		rec, err := ndjson.ParseRecord(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", o.Input, lineNo, err)
		}
		if err := transform(rec); err != nil {
			return fmt.Errorf("%s:%d: %w", o.Input, lineNo, err)
		}
		out, err := rec.Marshal()
		if err != nil {
			return fmt.Errorf("%s:%d: %w", o.Input, lineNo, err)
		}
		select {
		case lines <- out:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(lines)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if serr != nil {
		if errors.Is(serr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, serr)
		return 3
	}
	return 0
}
