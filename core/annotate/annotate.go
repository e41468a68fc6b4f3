// core/annotate/annotate.go
package annotate

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Annotation sets one field to a string value on matching records.
type Annotation struct {
	Field string
	Value string
}

// Table maps record ids to their annotations, kept in file order.
type Table map[string][]Annotation

// LoadTSV reads an annotation file with one "id<TAB>field<TAB>value" entry
// per line. Blank lines and '#' comments are skipped. A malformed line is
// a configuration error, reported as path:line.
func LoadTSV(path string) (Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	tab := make(Table)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.SplitN(line, "\t", 3)
		if len(f) != 3 {
			return nil, fmt.Errorf("%s:%d expected 3 tab-separated fields, got %d", path, ln, len(f))
		}
		id, field := f[0], f[1]
		if id == "" || field == "" {
			return nil, fmt.Errorf("%s:%d empty id or field name", path, ln)
		}
		tab[id] = append(tab[id], Annotation{Field: field, Value: f[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tab, nil
}

// For returns the annotations for id in file order, or nil.
func (t Table) For(id string) []Annotation { return t[id] }
