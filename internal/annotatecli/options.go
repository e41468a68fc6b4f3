// internal/annotatecli/options.go
package annotatecli

import (
	"flag"
	"fmt"
	"io"

	"curate/internal/clibase"
	"curate/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Annotation merging
	AnnotationsFile string // TSV: id<TAB>field<TAB>value
	IDField         string // record field holding the id
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "merge curated annotations into NDJSON records",
		func(out io.Writer, def func(string) string) {
			_, _ = fmt.Fprintln(out, "Usage:")
			_, _ = fmt.Fprintf(out, "  %s [options] --annotations fixes.tsv [input.ndjson]\n", name)

			_, _ = fmt.Fprintln(out, "\nAnnotations:")
			_, _ = fmt.Fprintln(out, "  -a, --annotations file      TSV of id<TAB>field<TAB>value entries [*]")
			_, _ = fmt.Fprintf(out, "      --id-field string       Record field holding the id [%s]\n", def("id-field"))
		})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("curate-annotate"), nil) }

// PrintExamples prints a tiny, focused quickstart for curate-annotate.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "curate-annotate", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Apply hand-curated field overrides keyed by record id.")
		_, _ = fmt.Fprintln(w, "Existing fields are overwritten in place; new fields append.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  curate-annotate \\")
		_, _ = fmt.Fprintln(w, "    --annotations annotations.tsv \\")
		_, _ = fmt.Fprintln(w, "    --id-field strain \\")
		_, _ = fmt.Fprintln(w, "    metadata.ndjson > annotated.ndjson")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	fs.StringVar(&o.AnnotationsFile, "annotations", "", "annotation TSV file [*]")
	fs.StringVar(&o.AnnotationsFile, "a", "", "alias of --annotations")
	fs.StringVar(&o.IDField, "id-field", "id", "record field holding the id [id]")

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
	if o.AnnotationsFile == "" {
		return o, fmt.Errorf("--annotations is required")
	}
	if o.IDField == "" {
		return o, fmt.Errorf("--id-field must not be empty")
	}

	o.Common = c
	return o, nil
}
