package renamecli

import "testing"

func TestParseOK(t *testing.T) {
	o, err := ParseArgs(NewFlagSet("test"), []string{
		"--field-map", "Virus name=strain",
		"-m", "Collection date=date",
		"meta.ndjson",
	})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if len(o.FieldMaps) != 2 || o.FieldMaps[0] != "Virus name=strain" {
		t.Errorf("field maps = %v", o.FieldMaps)
	}
	if o.Input != "meta.ndjson" {
		t.Errorf("input = %q", o.Input)
	}
	if o.Force {
		t.Errorf("force should default to false")
	}
}

func TestParseErrorNoMaps(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{"meta.ndjson"}); err == nil {
		t.Fatalf("expected error when no --field-map supplied")
	}
}
