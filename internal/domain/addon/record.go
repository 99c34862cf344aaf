package addon

import (
	"fmt"
	"strings"
)

// Field is one key of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is an ordered set of descriptor fields.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord builds a record keeping the order of fields.
// A repeated key keeps its first position and takes the last value.
func NewRecord(fields ...Field) *Record {
	r := &Record{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}

	return r
}

// Set adds or replaces a field.
func (r *Record) Set(key string, value Value) {
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return
	}

	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get returns the value of key and whether it was declared.
func (r *Record) Get(key string) (Value, bool) {
	if r == nil {
		return Null(), false
	}

	i, ok := r.index[key]
	if !ok {
		return Null(), false
	}

	return r.fields[i].Value, true
}

// Lookup returns the value of key, null when it is absent.
func (r *Record) Lookup(key string) Value {
	v, _ := r.Get(key)

	return v
}

// Has reports whether key was declared.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)

	return ok
}

// Keys returns the keys in declaration order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}

	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}

	return keys
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.fields)
}

// LocalizedValue is one entry of a multilingual field group.
type LocalizedValue struct {
	// Locale is nil for the base entry.
	Locale *string
	Text   string
}

// Localized expands the multilingual group base of r: the base value first,
// then one entry per "<base>-<suffix>" key in declaration order. The suffix
// is not checked against any locale list.
func (r *Record) Localized(base string) ([]LocalizedValue, error) {
	text, err := r.Lookup(base).Text()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", base, err)
	}

	result := []LocalizedValue{{Text: text}}
	prefix := base + "-"

	for _, f := range r.fields {
		locale, ok := strings.CutPrefix(f.Key, prefix)
		if !ok {
			continue
		}

		if text, err = f.Value.Text(); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Key, err)
		}

		result = append(result, LocalizedValue{Locale: &locale, Text: text})
	}

	return result, nil
}
