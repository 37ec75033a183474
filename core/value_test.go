package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindNull},
		{"document", Document{}, KindDocument},
		{"array", Array{}, KindArray},
		{"string", "hi", KindString},
		{"number literal", Number("1.5"), KindNumber},
		{"int", 42, KindNumber},
		{"int64", int64(42), KindNumber},
		{"float64", 3.14, KindNumber},
		{"bool", true, KindBool},
		{"map is foreign", map[string]any{}, KindForeign},
		{"slice is foreign", []any{}, KindForeign},
		{"struct is foreign", struct{}{}, KindForeign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.in))
		})
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindDocument: "document",
		KindArray:    "array",
		KindString:   "string",
		KindNumber:   "number",
		KindBool:     "bool",
		KindNull:     "null",
		KindForeign:  "foreign",
	}
	for k, want := range kinds {
		assert.Equal(t, want, k.String())
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"null", nil, "null"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"string", "end", "end"},
		{"string with newline", "a\nb", `a\nb`},
		{"string with tab and cr", "a\tb\r", `a\tb\r`},
		{"number keeps literal", Number("0.30000000000000004"), "0.30000000000000004"},
		{"number keeps exponent", Number("1e3"), "1e3"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float64 shortest", 1.5, "1.5"},
		{"float64 whole", float64(2), "2"},
		{"foreign falls back", complex(1, 2), "(1+2i)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Literal(tt.in))
		})
	}
}

func TestIsContainer(t *testing.T) {
	assert.True(t, IsContainer(Document{}))
	assert.True(t, IsContainer(Array{}))
	assert.False(t, IsContainer("s"))
	assert.False(t, IsContainer(nil))
	assert.False(t, IsContainer(Number("1")))
}

func TestDocumentGet(t *testing.T) {
	doc := Document{
		{Key: "a", Value: Number("1")},
		{Key: "b", Value: "two"},
	}

	v, ok := doc.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	_, ok = doc.Get("missing")
	assert.False(t, ok)
}
