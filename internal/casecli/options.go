// internal/casecli/options.go
package casecli

import (
	"flag"
	"fmt"
	"io"

	"curate/internal/clibase"
	"curate/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Titlecasing
	Fields []string // field names to titlecase, in flag order
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "titlecase string fields in NDJSON records",
		func(out io.Writer, def func(string) string) {
			_, _ = fmt.Fprintln(out, "Usage:")
			_, _ = fmt.Fprintf(out, "  %s [options] --field region --field country [input.ndjson]\n", name)

			_, _ = fmt.Fprintln(out, "\nTitlecasing:")
			_, _ = fmt.Fprintln(out, "  -f, --field string          Field to titlecase (repeatable) [*]")
		})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("curate-titlecase"), nil) }

// PrintExamples prints a tiny, focused quickstart for curate-titlecase.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "curate-titlecase", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Titlecase free-text fields; existing uppercase runs like USA survive.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  curate-titlecase --field region --field country metadata.ndjson")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	fieldVal := &clibase.SliceValue{Dst: &o.Fields}
	fs.Var(fieldVal, "field", "field to titlecase (repeatable) [*]")
	fs.Var(fieldVal, "f", "alias of --field")

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

	o.Common = c
	return o, nil
}
