// Package markdown renders trees as nested Markdown bullet lists.
package markdown

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sonnes/leafwalk/core"
)

// Renderer renders a tree as a nested bullet list, one bullet per entry.
type Renderer struct{}

// New creates a markdown Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the bullet list to w. A level-one heading with the tree
// name precedes the list when the tree has one.
func (r *Renderer) Render(w io.Writer, t *core.Tree) error {
	if t.Name != "" {
		if _, err := fmt.Fprintf(w, "# %s\n\n", t.Name); err != nil {
			return fmt.Errorf("write heading: %w", err)
		}
	}
	if !core.IsContainer(t.Root) {
		_, err := fmt.Fprintf(w, "%s\n", code(t.Root))
		return err
	}
	return writeValue(w, t.Root, 0)
}

func writeValue(w io.Writer, v any, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch val := v.(type) {
	case core.Document:
		for _, e := range val {
			if err := writeEntry(w, indent, "**"+escapeKey(e.Key)+"**", e.Value, depth); err != nil {
				return err
			}
		}
	case core.Array:
		for i, el := range val {
			if err := writeEntry(w, indent, "`["+strconv.Itoa(i)+"]`", el, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeEntry(w io.Writer, indent, label string, v any, depth int) error {
	if core.IsContainer(v) {
		if _, err := fmt.Fprintf(w, "%s- %s:\n", indent, label); err != nil {
			return fmt.Errorf("write bullet: %w", err)
		}
		return writeValue(w, v, depth+1)
	}
	_, err := fmt.Fprintf(w, "%s- %s: %s\n", indent, label, code(v))
	if err != nil {
		return fmt.Errorf("write bullet: %w", err)
	}
	return nil
}

// code wraps a scalar literal in backticks, widening the fence when the
// literal itself contains one.
func code(v any) string {
	s := core.Literal(v)
	if !strings.Contains(s, "`") {
		return "`" + s + "`"
	}
	return "`` " + s + " ``"
}

var keyEscaper = strings.NewReplacer(
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	"`", "\\`",
)

func escapeKey(key string) string {
	return keyEscaper.Replace(key)
}
