package clibase

import (
	"flag"
	"testing"
)

func TestRegisterDefaults(t *testing.T) {
	fs := NewFlagSet("test")
	var c Common
	Register(fs, &c)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Input != "-" || c.Quiet || c.Version {
		t.Errorf("defaults = %+v", c)
	}
}

func TestAfterParsePositionalInput(t *testing.T) {
	c := Common{Input: "-"}
	if err := AfterParse(&c, []string{"file.ndjson"}); err != nil {
		t.Fatalf("AfterParse: %v", err)
	}
	if c.Input != "file.ndjson" {
		t.Errorf("input = %q", c.Input)
	}
}

func TestAfterParseTooManyPositionals(t *testing.T) {
	c := Common{Input: "-"}
	if err := AfterParse(&c, []string{"a", "b"}); err == nil {
		t.Fatalf("expected error for two positionals")
	}
}

func TestSliceValueAppends(t *testing.T) {
	var dst []string
	v := &SliceValue{Dst: &dst}
	_ = v.Set("a")
	_ = v.Set("b")
	if len(dst) != 2 || dst[0] != "a" || dst[1] != "b" {
		t.Errorf("dst = %v", dst)
	}
	if v.String() == "" {
		t.Errorf("String() should render current values")
	}
}

func TestSliceValueRepeatableOnFlagSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var dst []string
	val := &SliceValue{Dst: &dst}
	fs.Var(val, "field", "")
	fs.Var(val, "f", "")
	if err := fs.Parse([]string{"--field", "date", "-f", "date_submitted"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(dst) != 2 || dst[1] != "date_submitted" {
		t.Errorf("dst = %v", dst)
	}
}
