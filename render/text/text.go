// Package text renders a tree as a plain indented outline: one line per
// document entry or array element, scalars inline, containers opening a
// deeper level. The outline is deterministic and follows stored order, so
// rendering the same tree twice produces identical bytes.
package text

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/sonnes/leafwalk/core"
)

const defaultIndent = "  "

// Options controls the outline shape.
type Options struct {
	// Prefix is prepended to every line. Nested levels extend it.
	Prefix string
	// Indent is the per-level indentation unit. Empty means two spaces.
	Indent string
}

func (o Options) indent() string {
	if o.Indent == "" {
		return defaultIndent
	}
	return o.Indent
}

// Lines returns the outline of root as a lazy line sequence.
//
// Each document entry renders as "<prefix><key>: " followed by the scalar
// literal inline, or by the container's own lines one indent level deeper.
// Array elements render the same way with "[<i>]: " labels. A container
// line keeps the trailing space after its colon. A scalar root or an empty
// container yields no lines.
func Lines(root any, opts Options) iter.Seq[string] {
	indent := opts.indent()
	return func(yield func(string) bool) {
		lines(root, opts.Prefix, indent, yield)
	}
}

func lines(v any, prefix, indent string, yield func(string) bool) bool {
	switch val := v.(type) {
	case core.Document:
		for _, e := range val {
			if !entry(e.Key, e.Value, prefix, indent, yield) {
				return false
			}
		}
	case core.Array:
		for i, el := range val {
			if !entry("["+strconv.Itoa(i)+"]", el, prefix, indent, yield) {
				return false
			}
		}
	}
	return true
}

func entry(label string, v any, prefix, indent string, yield func(string) bool) bool {
	if core.IsContainer(v) {
		if !yield(prefix + label + ": ") {
			return false
		}
		return lines(v, prefix+indent, indent, yield)
	}
	return yield(prefix + label + ": " + core.Literal(v))
}

// Renderer writes the outline to a writer, one line per row.
type Renderer struct {
	// Prefix is prepended to every line.
	Prefix string
	// Indent overrides the two-space indentation unit.
	Indent string
}

// New creates a text Renderer with default options.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the outline of t.Root to w.
func (r *Renderer) Render(w io.Writer, t *core.Tree) error {
	var werr error
	for line := range Lines(t.Root, Options{Prefix: r.Prefix, Indent: r.Indent}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			werr = err
			break
		}
	}
	if werr != nil {
		return fmt.Errorf("write line: %w", werr)
	}
	return nil
}
