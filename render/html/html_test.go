package html

import (
	"bytes"
	"testing"

	"github.com/sonnes/leafwalk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTree() *core.Tree {
	return &core.Tree{
		Name: "config.json",
		Size: 1536,
		Root: core.Document{
			{Key: "a", Value: core.Number("1")},
			{Key: "b", Value: core.Array{
				core.Number("2"),
				core.Document{{Key: "c", Value: core.Number("3")}},
			}},
			{Key: "d", Value: core.Document{{Key: "e", Value: "end"}}},
		},
	}
}

func TestRenderFullPage(t *testing.T) {
	tree := buildTestTree()
	r := New()
	var buf bytes.Buffer
	err := r.Render(&buf, tree)
	require.NoError(t, err)

	html := buf.String()

	t.Run("page structure", func(t *testing.T) {
		assert.Contains(t, html, "<!DOCTYPE html>")
		assert.Contains(t, html, `<html lang="en"`)
		assert.Contains(t, html, "</html>")
	})

	t.Run("tailwind CDN", func(t *testing.T) {
		assert.Contains(t, html, "@tailwindcss/browser@4")
	})

	t.Run("title", func(t *testing.T) {
		assert.Contains(t, html, "<title>config.json</title>")
	})

	t.Run("header metadata", func(t *testing.T) {
		assert.Contains(t, html, "8 nodes")
		assert.Contains(t, html, "4 leaves")
		assert.Contains(t, html, "depth 3")
		assert.Contains(t, html, "1.5 KB")
	})
}

func TestRenderOutline(t *testing.T) {
	tree := buildTestTree()
	r := New()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tree))

	html := buf.String()

	t.Run("keys are bold", func(t *testing.T) {
		assert.Contains(t, html, "<strong>a</strong>")
		assert.Contains(t, html, "<strong>e</strong>")
	})

	t.Run("indices are code", func(t *testing.T) {
		assert.Contains(t, html, "<code>[0]</code>")
		assert.Contains(t, html, "<code>[1]</code>")
	})

	t.Run("scalars are code", func(t *testing.T) {
		assert.Contains(t, html, "<code>1</code>")
		assert.Contains(t, html, "<code>end</code>")
	})

	t.Run("nesting produces sublists", func(t *testing.T) {
		assert.Greater(t, countOccurrences(html, "<ul>"), 1)
	})

	t.Run("name heading not repeated in body", func(t *testing.T) {
		assert.NotContains(t, html, "<h1>config.json</h1>")
	})
}

func TestRenderSourceBlock(t *testing.T) {
	tree := buildTestTree()
	r := New()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tree))

	html := buf.String()

	t.Run("highlighted with inline styles", func(t *testing.T) {
		assert.Contains(t, html, "background-color:#282a36")
	})

	t.Run("source content present", func(t *testing.T) {
		assert.Contains(t, html, "&#34;end&#34;")
	})

	t.Run("section heading", func(t *testing.T) {
		assert.Contains(t, html, "Source")
	})
}

func TestRenderScalarRoot(t *testing.T) {
	tree := &core.Tree{Name: "bare", Root: core.Number("42")}
	r := New()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tree))

	html := buf.String()
	assert.Contains(t, html, "<code>42</code>")
}

func TestRenderWithoutName(t *testing.T) {
	tree := &core.Tree{Root: core.Document{{Key: "a", Value: true}}}
	r := New()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tree))

	assert.Contains(t, buf.String(), "<title>leafwalk</title>")
}

func TestRenderWithoutSize(t *testing.T) {
	tree := &core.Tree{Name: "x", Root: core.Document{{Key: "a", Value: true}}}
	r := New()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tree))

	assert.NotContains(t, buf.String(), " B<")
	assert.Contains(t, buf.String(), "2 nodes")
}

func TestFormatNumberFuncMap(t *testing.T) {
	tests := []struct {
		input  int
		expect string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-500, "-500"},
		{-1500, "-1,500"},
	}
	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, formatNumber(tt.input))
		})
	}
}

func countOccurrences(s, substr string) int {
	count := 0
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			count++
		}
	}
	return count
}
