// core/textcase/textcase.go
package textcase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Titler titlecases free-text field values. Existing uppercase runs are
// preserved, so abbreviations like "USA" survive. A cases.Caser is not
// safe for concurrent use; each Titler owns one.
type Titler struct {
	c cases.Caser
}

func New() *Titler {
	return &Titler{c: cases.Title(language.English, cases.NoLower)}
}

// Title returns s with each word titlecased.
func (t *Titler) Title(s string) string { return t.c.String(s) }
