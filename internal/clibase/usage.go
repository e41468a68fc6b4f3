// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"curate/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. extra prints the
// tool-specific sections (usage line, tool flags) between the header and
// the shared blocks.
func UsageCommon(fs *flag.FlagSet, name, oneLiner string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, oneLiner)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "  -i, --input file            NDJSON input, '-' for STDIN, .gz accepted [%s]\n", def("input"))
		fmt.Fprintln(out, "                              (one positional path is accepted as well)")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings on the diagnostic stream [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
	}
}
