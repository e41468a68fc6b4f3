package ndjson

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScanLinesOrder(t *testing.T) {
	in := "one\ntwo\nthree\n"
	var got []string
	err := ScanLines(context.Background(), strings.NewReader(in), func(line string) error {
		got = append(got, line)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanLines: %v", err)
	}
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanLinesNoTrailingNewline(t *testing.T) {
	var n int
	err := ScanLines(context.Background(), strings.NewReader("a\nb"), func(string) error {
		n++
		return nil
	})
	if err != nil || n != 2 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestScanLinesEmitError(t *testing.T) {
	boom := errors.New("boom")
	err := ScanLines(context.Background(), strings.NewReader("a\nb\n"), func(string) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestScanLinesCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ScanLines(ctx, strings.NewReader("a\nb\n"), func(string) error {
		t.Fatalf("emit called after cancel")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestOpenStdinDash(t *testing.T) {
	rc, err := Open("-")
	if err != nil {
		t.Fatalf("Open(-): %v", err)
	}
	_ = rc.Close()
}

func TestOpenPlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "in.ndjson")
	if err := os.WriteFile(plain, []byte(`{"a":1}`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var zbuf bytes.Buffer
	zw := gzip.NewWriter(&zbuf)
	_, _ = zw.Write([]byte(`{"a":1}` + "\n"))
	_ = zw.Close()
	zipped := filepath.Join(dir, "in.ndjson.gz")
	if err := os.WriteFile(zipped, zbuf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{plain, zipped} {
		rc, err := Open(p)
		if err != nil {
			t.Fatalf("Open(%s): %v", p, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		if string(data) != `{"a":1}`+"\n" {
			t.Errorf("%s content = %q", p, data)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.ndjson")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
