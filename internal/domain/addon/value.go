package addon

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind classifies a descriptor value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns a readable kind name for error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ErrInvalidField is returned when a descriptor field has an unusable shape.
var ErrInvalidField = errors.New("invalid descriptor field")

// Value is a single descriptor value. The zero Value is null.
type Value struct {
	kind   Kind
	text   string
	items  []Value
	record *Record
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, text: strconv.FormatBool(b)}
}

// Number returns a number value keeping its literal spelling.
func Number(literal string) Value {
	return Value{kind: KindNumber, text: literal}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Sequence returns a sequence value.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: items}
}

// Mapping returns a mapping value backed by r.
func Mapping(r *Record) Value {
	if r == nil {
		r = NewRecord()
	}

	return Value{kind: KindMapping, record: r}
}

// Kind reports the value kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Items returns the elements of a sequence, nil otherwise.
func (v Value) Items() []Value {
	return v.items
}

// Record returns the fields of a mapping, nil otherwise.
func (v Value) Record() *Record {
	return v.record
}

// Truthy follows JavaScript truthiness: null, false, "", 0 and NaN are false,
// everything else (including empty sequences and mappings) is true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.text == "true"
	case KindNumber:
		return numberTruthy(v.text)
	case KindString:
		return v.text != ""
	default:
		return true
	}
}

// Text renders a scalar as element or attribute text. Null renders empty.
func (v Value) Text() (string, error) {
	switch v.kind {
	case KindNull:
		return "", nil
	case KindBool, KindNumber, KindString:
		return v.text, nil
	default:
		return "", fmt.Errorf("%w: %s cannot be rendered as text", ErrInvalidField, v.kind)
	}
}

func numberTruthy(literal string) bool {
	lower := strings.ToLower(strings.TrimLeft(literal, "+-"))
	if lower == ".nan" || lower == "nan" {
		return false
	}

	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		return f != 0 && !math.IsNaN(f)
	}

	if i, err := strconv.ParseInt(literal, 0, 64); err == nil {
		return i != 0
	}

	return true
}
