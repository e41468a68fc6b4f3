// core/dates/dates.go
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// ISO is the canonical output layout for normalized dates.
const ISO = "2006-01-02"

// Normalizer rewrites date strings into canonical YYYY-MM-DD form.
// Patterns are tried in order and the first full-string match wins, so
// callers resolve ambiguity between overlapping patterns by ordering
// their format list.
type Normalizer struct {
	patterns []string
	layouts  []layoutPair
}

// layoutPair keeps a pattern's exact Go layout next to its lenient rewrite.
// The strict form is tried first so that literal runs the lenient rewrite
// cannot express (underscore-delimited dates, where a bare day token would
// collide with Go's space-padded "_2") still match zero-padded input.
type layoutPair struct {
	strict  string
	lenient string
}

// New compiles an ordered list of strftime-style patterns
// (%Y-%m-%d, %Y_%m_%d, %Y-%m-%dT%H:%M:%SZ, ...).
// A pattern that cannot be expressed as a date layout is a configuration
// error, never a per-record one.
func New(patterns []string) (*Normalizer, error) {
	if len(patterns) == 0 {
		return nil, errors.New("at least one date format is required")
	}
	n := &Normalizer{patterns: append([]string(nil), patterns...)}
	for _, p := range patterns {
		layout, err := strftime.Layout(p)
		if err != nil {
			return nil, fmt.Errorf("bad date format %q: %w", p, err)
		}
		n.layouts = append(n.layouts, layoutPair{strict: layout, lenient: relax(layout)})
	}
	return n, nil
}

// Patterns returns the format list in match order.
func (n *Normalizer) Patterns() []string { return n.patterns }

// Normalize returns the canonical YYYY-MM-DD rendering of s and true when
// some pattern parses the whole string. Otherwise it returns s unchanged
// and false. Time-of-day in a matched value is discarded. An empty s never
// matches and never warrants a diagnostic.
func (n *Normalizer) Normalize(s string) (string, bool) {
	if s == "" {
		return s, false
	}
	for _, pair := range n.layouts {
		if t, err := time.Parse(pair.strict, s); err == nil {
			return t.Format(ISO), true
		}
		if pair.lenient == pair.strict {
			continue
		}
		if t, err := time.Parse(pair.lenient, s); err == nil {
			return t.Format(ISO), true
		}
	}
	return s, false
}

// relax rewrites zero-padded numeric layout chunks into their lenient
// one-or-two-digit forms so that inputs like 2020-1-15 parse under
// %Y-%m-%d the way strptime accepts them. The lenient forms still accept
// zero-padded input, so this only widens the match. A day chunk directly
// after a literal underscore stays padded: "_2" is itself a layout token
// (space-padded day) and would stop matching the underscore.
func relax(layout string) string {
	var b strings.Builder
	prev := byte(0)
	for i := 0; i < len(layout); {
		switch {
		case strings.HasPrefix(layout[i:], "2006"):
			b.WriteString("2006")
			i += 4
		case strings.HasPrefix(layout[i:], "002"):
			b.WriteString("002")
			i += 3
		case strings.HasPrefix(layout[i:], "01"):
			b.WriteString("1")
			i += 2
		case strings.HasPrefix(layout[i:], "02"):
			if prev == '_' {
				b.WriteString("02")
			} else {
				b.WriteString("2")
			}
			i += 2
		case strings.HasPrefix(layout[i:], "04"):
			b.WriteString("4")
			i += 2
		case strings.HasPrefix(layout[i:], "05"):
			b.WriteString("5")
			i += 2
		default:
			b.WriteByte(layout[i])
			i++
		}
		prev = layout[i-1]
	}
	return b.String()
}
