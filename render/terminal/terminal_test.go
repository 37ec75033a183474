package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/leafwalk/core"
	"github.com/sonnes/leafwalk/render/text"
)

func sampleTree() *core.Tree {
	return &core.Tree{
		Name: "sample.json",
		Size: 2048,
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

func TestRenderHeader(t *testing.T) {
	r := &Renderer{Width: 100}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleTree()))

	out := ansi.Strip(buf.String())

	assert.Contains(t, out, "sample.json")
	assert.Contains(t, out, "8 nodes")
	assert.Contains(t, out, "4 leaves")
	assert.Contains(t, out, "depth 3")
	assert.Contains(t, out, "2.0 KB")
}

func TestRenderOutline(t *testing.T) {
	r := &Renderer{Width: 100}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleTree()))

	out := ansi.Strip(buf.String())

	assert.Contains(t, out, "a: 1\n")
	assert.Contains(t, out, "b: \n")
	assert.Contains(t, out, "  [0]: 2\n")
	assert.Contains(t, out, "    c: 3\n")
	assert.Contains(t, out, "  e: end\n")
}

func TestRenderMatchesTextOutline(t *testing.T) {
	r := &Renderer{Width: 500}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleTree()))

	// Header is three lines: title, counts, blank.
	stripped := ansi.Strip(buf.String())
	body := strings.Join(strings.Split(stripped, "\n")[3:], "\n")

	var tbuf bytes.Buffer
	require.NoError(t, text.New().Render(&tbuf, sampleTree()))

	assert.Equal(t, tbuf.String(), body, "stripped outline should match the plain text renderer")
}

func TestRenderScalarKinds(t *testing.T) {
	tree := &core.Tree{
		Name: "kinds.json",
		Root: core.Document{
			{Key: "s", Value: "txt"},
			{Key: "n", Value: core.Number("1.5")},
			{Key: "t", Value: true},
			{Key: "z", Value: nil},
		},
	}

	r := &Renderer{Width: 80}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tree))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "s: txt")
	assert.Contains(t, out, "n: 1.5")
	assert.Contains(t, out, "t: true")
	assert.Contains(t, out, "z: null")
}

func TestRenderTruncation(t *testing.T) {
	tree := &core.Tree{
		Name: "long.json",
		Root: core.Document{
			{Key: "blob", Value: strings.Repeat("a", 300)},
		},
	}

	r := &Renderer{Width: 60}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tree))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "...")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 60, "line %q overflows", line)
	}
}

func TestRenderScalarRootHeaderOnly(t *testing.T) {
	tree := &core.Tree{Name: "bare", Root: core.Number("42")}

	r := &Renderer{Width: 80}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tree))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "bare")
	assert.Contains(t, out, "1 nodes")
	assert.NotContains(t, out, ": ", "scalar root should render no outline lines")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "12345", 5, "12345"},
		{"truncated", "abcdefghij", 8, "abcde..."},
		{"tiny width floors at 4", "abcdef", 1, "a..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.maxWidth))
		})
	}
}
