// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
)

// Common holds the CLI fields shared by every curate-* tool.
type Common struct {
	Input   string // NDJSON file path or "-" for stdin
	Quiet   bool
	Version bool
}

// SliceValue appends each occurrence of a repeatable flag to a *[]string.
type SliceValue struct{ Dst *[]string }

func (s *SliceValue) String() string {
	if s.Dst == nil {
		return ""
	}
	return fmt.Sprint(*s.Dst)
}

func (s *SliceValue) Set(v string) error {
	*s.Dst = append(*s.Dst, v)
	return nil
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Input, "input", "-", "NDJSON input file (or '-' for STDIN) [-]")
	fs.StringVar(&c.Input, "i", "-", "alias of --input")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress warnings on the diagnostic stream [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse folds at most one positional input path into Common and runs
// shared validation.
func AfterParse(c *Common, posArgs []string) error {
	if len(posArgs) > 1 {
		return fmt.Errorf("at most one positional input expected, got %d", len(posArgs))
	}
	if len(posArgs) == 1 {
		c.Input = posArgs[0]
	}
	return Validate(c)
}

// Validate applies the shared CLI invariants.
func Validate(c *Common) error {
	if c.Input == "" {
		return errors.New("--input must not be empty")
	}
	return nil
}
