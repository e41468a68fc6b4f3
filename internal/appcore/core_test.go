package appcore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"curate-core/ndjson"
)

func write(t *testing.T, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "in.ndjson")
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func identity(*ndjson.Record) error { return nil }

func TestRunOneLinePerLine(t *testing.T) {
	in := write(t, `{"a":1}`+"\n"+`{"b":2}`+"\n"+`{"c":3}`+"\n")
	var out, errBuf bytes.Buffer
	code := Run(context.Background(), &out, &errBuf, Options{Input: in}, identity)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	want := `{"a":1}` + "\n" + `{"b":2}` + "\n" + `{"c":3}` + "\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunTransformApplied(t *testing.T) {
	in := write(t, `{"x":"old"}`+"\n")
	var out, errBuf bytes.Buffer
	code := Run(context.Background(), &out, &errBuf, Options{Input: in}, func(r *ndjson.Record) error {
		r.SetString("x", "new")
		return nil
	})
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	if out.String() != `{"x":"new"}`+"\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunMalformedJSONIsFatal(t *testing.T) {
	in := write(t, `{"a":1}`+"\n"+"not json\n"+`{"c":3}`+"\n")
	var out, errBuf bytes.Buffer
	code := Run(context.Background(), &out, &errBuf, Options{Input: in}, identity)
	if code != 3 {
		t.Fatalf("exit %d, want 3", code)
	}
	// Records flushed before the fatal line stay valid.
	if !strings.Contains(errBuf.String(), ":2:") {
		t.Errorf("stderr should name the offending line: %q", errBuf.String())
	}
}

func TestRunMissingInput(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run(context.Background(), &out, &errBuf,
		Options{Input: filepath.Join(t.TempDir(), "nope.ndjson")}, identity)
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}

func TestRunCancel(t *testing.T) {
	in := write(t, strings.Repeat(`{"a":1}`+"\n", 10000))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := Run(ctx, &out, &errBuf, Options{Input: in}, identity)
	if code != 130 {
		t.Fatalf("exit %d, want 130", code)
	}
}
