package linewriter

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func never(error) bool { return false }

func TestStartWritesLinesInOrder(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start(&buf, 4, never)
	for _, l := range []string{`{"a":1}`, `{"b":2}`, `{"c":3}`} {
		in <- l
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer error: %v", err)
	}
	want := `{"a":1}` + "\n" + `{"b":2}` + "\n" + `{"c":3}` + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

type failWriter struct{ err error }

func (f *failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestStartWriteErrorDrains(t *testing.T) {
	boom := errors.New("disk full")
	in, done := Start(&failWriter{err: boom}, 1, never)
	// Lines big enough to overflow the 64 KiB buffer mid-stream, so the
	// write fails while the producer is still sending; the writer must
	// drain the channel after failing or these sends would deadlock.
	line := strings.Repeat("x", 8<<10)
	go func() {
		for i := 0; i < 100; i++ {
			in <- line
		}
		close(in)
	}()
	if err := <-done; !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestStartEmpty(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start(&buf, 0, never)
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
