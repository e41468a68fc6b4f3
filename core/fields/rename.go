// core/fields/rename.go
package fields

import (
	"fmt"
	"strings"
)

// Rule renames field Old to New, keeping the field's position.
type Rule struct {
	Old string
	New string
}

// ParseRules parses "old=new" specs in order. Duplicate sources are a
// configuration error; the same target from two sources is as well.
func ParseRules(specs []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	seenOld := make(map[string]bool, len(specs))
	seenNew := make(map[string]bool, len(specs))
	for _, s := range specs {
		from, to, ok := strings.Cut(s, "=")
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("bad field map %q: want old=new", s)
		}
		if seenOld[from] {
			return nil, fmt.Errorf("field %q renamed twice", from)
		}
		if seenNew[to] {
			return nil, fmt.Errorf("two fields renamed to %q", to)
		}
		seenOld[from] = true
		seenNew[to] = true
		rules = append(rules, Rule{Old: from, New: to})
	}
	return rules, nil
}
