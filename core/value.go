// Package core defines the ordered tree model that readers produce, all
// transformers mutate, and all renderers consume.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Document is an ordered collection of key-value pairs. Iteration order is
// storage order, which readers set to the order keys appeared in the input.
type Document []Entry

// Entry is a single key-value pair in a Document.
type Entry struct {
	Key   string
	Value any
}

// Array is an ordered sequence of values, indexed from zero.
type Array []any

// Number is a JSON number kept as its source literal. Decoding never converts
// numbers to float64, so values like 1e400 or 0.30000000000000004 render
// exactly as they appeared in the input.
type Number string

// Kind classifies a value in the model.
type Kind int

const (
	// KindForeign marks Go values outside the modeled shapes. They still
	// render through Literal, never as an error.
	KindForeign Kind = iota
	KindDocument
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns the lowercase label used in stats and debug logs.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "foreign"
	}
}

// KindOf classifies v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case Document:
		return KindDocument
	case Array:
		return KindArray
	case string:
		return KindString
	case Number, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindNumber
	case bool:
		return KindBool
	default:
		return KindForeign
	}
}

// IsContainer reports whether v is a Document or an Array.
func IsContainer(v any) bool {
	k := KindOf(v)
	return k == KindDocument || k == KindArray
}

// escaper keeps literals on a single line. All other bytes pass through.
var escaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// Literal returns the single-line text form of a scalar: strings verbatim
// with line breaks and tabs escaped, bools as true/false, nil as null,
// Numbers as their source literal, native numbers in their shortest decimal
// form. Anything else falls back to fmt formatting.
func Literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return escaper.Replace(val)
	case Number:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return escaper.Replace(fmt.Sprintf("%v", val))
	}
}

// Get returns the value for the first entry with the given key.
func (d Document) Get(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}
