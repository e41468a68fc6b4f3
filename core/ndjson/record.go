// core/ndjson/record.go
package ndjson

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Field is one top-level member of a record. The value is kept in its raw
// JSON encoding so untouched fields round-trip byte-for-byte.
type Field struct {
	Key string
	Raw string
}

// Record is an order-preserving view of one NDJSON object. Only fields a
// transform explicitly touches change; key order is never disturbed.
type Record struct {
	fields []Field
	index  map[string]int
}

// ParseRecord parses one NDJSON line. A line that is not a valid JSON
// object is an upstream contract violation, not messy source data, and is
// reported as an error for the caller to treat as fatal.
func ParseRecord(line string) (*Record, error) {
	if !gjson.Valid(line) {
		return nil, fmt.Errorf("invalid JSON")
	}
	v := gjson.Parse(line)
	if !v.IsObject() {
		return nil, fmt.Errorf("not a JSON object")
	}
	r := &Record{index: make(map[string]int)}
	v.ForEach(func(k, val gjson.Result) bool {
		r.index[k.String()] = len(r.fields)
		r.fields = append(r.fields, Field{Key: k.String(), Raw: val.Raw})
		return true
	})
	return r, nil
}

// Len returns the number of top-level fields.
func (r *Record) Len() int { return len(r.fields) }

// Fields returns the fields in record order. The slice is shared; callers
// must not mutate it.
func (r *Record) Fields() []Field { return r.fields }

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

// StringValue returns the decoded string value of key. ok is false when
// the key is absent or the value is not a JSON string.
func (r *Record) StringValue(key string) (string, bool) {
	i, ok := r.index[key]
	if !ok {
		return "", false
	}
	v := gjson.Parse(r.fields[i].Raw)
	if v.Type != gjson.String {
		return "", false
	}
	return v.Str, true
}

// SetString sets key to the string value s, replacing the value in place
// when the key exists and appending a new field otherwise.
func (r *Record) SetString(key, s string) {
	raw := quote(s)
	if i, ok := r.index[key]; ok {
		r.fields[i].Raw = raw
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Raw: raw})
}

// Rename changes the key of a field without moving it. It reports whether
// the old key was present. Renaming onto an existing key is the caller's
// decision to make; see Delete.
func (r *Record) Rename(from, to string) bool {
	i, ok := r.index[from]
	if !ok {
		return false
	}
	delete(r.index, from)
	r.fields[i].Key = to
	r.index[to] = i
	return true
}

// Delete removes key. It reports whether the key was present.
func (r *Record) Delete(key string) bool {
	i, ok := r.index[key]
	if !ok {
		return false
	}
	r.fields = append(r.fields[:i], r.fields[i+1:]...)
	delete(r.index, key)
	for k, j := range r.index {
		if j > i {
			r.index[k] = j - 1
		}
	}
	return true
}

// Marshal renders the record as one compact JSON line (no trailing
// newline). A value that does not serialize to valid JSON is an error the
// caller must treat as fatal.
func (r *Record) Marshal() (string, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(f.Key))
		b.WriteByte(':')
		b.WriteString(f.Raw)
	}
	b.WriteByte('}')
	out := string(pretty.Ugly([]byte(b.String())))
	if !gjson.Valid(out) {
		return "", fmt.Errorf("record is not serializable to JSON")
	}
	return out, nil
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
