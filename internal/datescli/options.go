// internal/datescli/options.go
package datescli

import (
	"flag"
	"fmt"
	"io"

	"curate/internal/clibase"
	"curate/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Date normalization
	Fields  []string // field names to normalize, in flag order
	Formats []string // expected strftime patterns, in flag order (first match wins)
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "normalize date fields in NDJSON records to YYYY-MM-DD",
		func(out io.Writer, def func(string) string) {
			_, _ = fmt.Fprintln(out, "Usage:")
			_, _ = fmt.Fprintf(out, "  %s [options] --field date --expected-date-format %%Y-%%m-%%d [input.ndjson]\n", name)

			_, _ = fmt.Fprintln(out, "\nNormalization:")
			_, _ = fmt.Fprintln(out, "  -f, --field string               Field to normalize (repeatable) [*]")
			_, _ = fmt.Fprintln(out, "  -e, --expected-date-format string")
			_, _ = fmt.Fprintln(out, "                                   Accepted strftime pattern (repeatable, tried in order) [*]")
		})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("curate-dates"), nil) }

// PrintExamples prints a tiny, focused quickstart for curate-dates.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "curate-dates", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Rewrite heterogeneous date strings into canonical YYYY-MM-DD.")
		_, _ = fmt.Fprintln(w, "Values matching no pattern pass through unchanged, with a warning.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  curate-dates \\")
		_, _ = fmt.Fprintln(w, "    --field date --field date_submitted \\")
		_, _ = fmt.Fprintf(w, "    --expected-date-format '%s' \\\n", "%Y-%m-%d")
		_, _ = fmt.Fprintf(w, "    --expected-date-format '%s' \\\n", "%Y_%m_%d")
		_, _ = fmt.Fprintf(w, "    --expected-date-format '%s' \\\n", "%Y-%m-%dT%H:%M:%SZ")
		_, _ = fmt.Fprintln(w, "    metadata.ndjson > curated.ndjson")
	})
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	fieldVal := &clibase.SliceValue{Dst: &o.Fields}
	fs.Var(fieldVal, "field", "field to normalize (repeatable) [*]")
	fs.Var(fieldVal, "f", "alias of --field")
	formatVal := &clibase.SliceValue{Dst: &o.Formats}
	fs.Var(formatVal, "expected-date-format", "accepted strftime pattern (repeatable, ordered) [*]")
	fs.Var(formatVal, "e", "alias of --expected-date-format")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(&c, posArgs); err != nil {
		return o, err
	}
	if len(o.Fields) == 0 {
		return o, fmt.Errorf("at least one --field is required")
	}
	if len(o.Formats) == 0 {
		return o, fmt.Errorf("at least one --expected-date-format is required")
	}

	o.Common = c
	return o, nil
}
