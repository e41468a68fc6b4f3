// internal/diag/diag.go
package diag

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger emits human-readable diagnostics on the warning stream, separate
// from the primary NDJSON output. Warnings are advisory and never alter
// the success path; --quiet drops warnings but never errors.
type Logger struct {
	l     *log.Logger
	quiet bool
}

func New(w io.Writer, quiet bool) *Logger {
	return &Logger{
		l: log.NewWithOptions(w, log.Options{
			ReportTimestamp: false,
		}),
		quiet: quiet,
	}
}

func (d *Logger) Warn(msg string, keyvals ...any) {
	if d.quiet {
		return
	}
	d.l.Warn(msg, keyvals...)
}

func (d *Logger) Error(msg string, keyvals ...any) {
	d.l.Error(msg, keyvals...)
}
