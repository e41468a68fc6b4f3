// internal/linewriter/linewriter.go
package linewriter

import (
	"bufio"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across line writers to avoid per-writer
// mallocs in multi-run test binaries.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a writer goroutine that emits each received line followed
// by a newline. isBroken recognizes broken/closed pipe errors so that a
// downstream `head` exiting early is not a failure. The error channel
// yields exactly one value after the input channel is closed (or after a
// write error; remaining lines are then drained and dropped).
func Start(out io.Writer, bufSize int, isBroken func(error) bool) (chan<- string, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan string, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		fail := func(err error) {
			done <- err
			for range in {
			}
		}

		for line := range in {
			if _, err := bw.WriteString(line); err != nil {
				fail(err)
				return
			}
			if err := bw.WriteByte('\n'); err != nil {
				fail(err)
				return
			}
		}
		if err := bw.Flush(); err != nil && !isBroken(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}
