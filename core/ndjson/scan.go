// core/ndjson/scan.go
package ndjson

import (
	"bufio"
	"context"
	"io"
)

// MaxLineBytes caps the size of a single NDJSON line (64 MiB). The stream
// itself is unbounded; memory use is bounded by one line at a time.
const MaxLineBytes = 64 * 1024 * 1024

// ScanLines streams r line by line, calling emit for each line including
// empty ones (an empty line is the caller's problem to reject). It is
// cancelable between lines and returns the first error from emit, the
// scanner, or the context.
func ScanLines(ctx context.Context, r io.Reader, emit func(line string) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, MaxLineBytes)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := emit(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
