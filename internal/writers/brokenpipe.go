// internal/writers/brokenpipe.go
package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers (like `head -n1`) closing the stream early is a
// normal way for an NDJSON filter to finish.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
