// internal/renamecli/options.go
package renamecli

import (
	"flag"
	"fmt"
	"io"

	"curate/internal/clibase"
	"curate/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Renaming
	FieldMaps []string // "old=new" specs, in flag order
	Force     bool     // overwrite an existing target field
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "rename fields in NDJSON records, keeping field order",
		func(out io.Writer, def func(string) string) {
			_, _ = fmt.Fprintln(out, "Usage:")
			_, _ = fmt.Fprintf(out, "  %s [options] --field-map 'Virus name=strain' [input.ndjson]\n", name)

			_, _ = fmt.Fprintln(out, "\nRenaming:")
			_, _ = fmt.Fprintln(out, "  -m, --field-map old=new     Rename old to new, in place (repeatable) [*]")
			_, _ = fmt.Fprintf(out, "      --force                 Overwrite an existing target field [%s]\n", def("force"))
		})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("curate-rename"), nil) }

// PrintExamples prints a tiny, focused quickstart for curate-rename.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "curate-rename", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Rename record fields without disturbing their position.")
		_, _ = fmt.Fprintln(w, "A rename onto an existing field is skipped with a warning")
		_, _ = fmt.Fprintln(w, "unless --force is given.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  curate-rename \\")
		_, _ = fmt.Fprintln(w, "    --field-map 'Virus name=strain' \\")
		_, _ = fmt.Fprintln(w, "    --field-map 'Collection date=date' \\")
		_, _ = fmt.Fprintln(w, "    metadata.ndjson > renamed.ndjson")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	mapVal := &clibase.SliceValue{Dst: &o.FieldMaps}
	fs.Var(mapVal, "field-map", "rename spec old=new (repeatable) [*]")
	fs.Var(mapVal, "m", "alias of --field-map")
	fs.BoolVar(&o.Force, "force", false, "overwrite an existing target field [false]")

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
	if len(o.FieldMaps) == 0 {
		return o, fmt.Errorf("at least one --field-map is required")
	}

	o.Common = c
	return o, nil
}
