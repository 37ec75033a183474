// Package terminal renders trees as an ANSI-colored outline for TTY viewing.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/sonnes/leafwalk/core"
	"github.com/sonnes/leafwalk/stat"
)

const defaultWidth = 100

// Renderer pretty-prints a tree as a colored outline with a header block.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
	// Indent overrides the two-space indentation unit.
	Indent string
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the header block and the colored outline to w. Lines wider
// than the terminal are truncated at the scalar literal.
func (r *Renderer) Render(w io.Writer, t *core.Tree) error {
	width := r.termWidth()
	indent := r.Indent
	if indent == "" {
		indent = "  "
	}

	writeHeader(w, t)
	writeValue(w, t.Root, "", indent, width)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeHeader renders the tree metadata block: title row, then node counts.
func writeHeader(w io.Writer, t *core.Tree) {
	title := t.Name
	if title == "" {
		title = "tree"
	}
	fmt.Fprintln(w, styleTitle.Render(title))

	s := stat.Collect(t)
	parts := []string{
		formatNumber(s.Nodes) + " nodes",
		formatNumber(s.Leaves) + " leaves",
		"depth " + formatNumber(s.MaxDepth),
	}
	if t.Size > 0 {
		parts = append(parts, formatSize(t.Size))
	}
	fmt.Fprintln(w, styleMeta.Render(strings.Join(parts, "  ")))
	fmt.Fprintln(w)
}

func writeValue(w io.Writer, v any, prefix, indent string, width int) {
	switch val := v.(type) {
	case core.Document:
		for _, e := range val {
			writeEntry(w, styleKey.Render(e.Key), e.Value, prefix, indent, width)
		}
	case core.Array:
		for i, el := range val {
			label := styleIndex.Render("[" + strconv.Itoa(i) + "]")
			writeEntry(w, label, el, prefix, indent, width)
		}
	}
}

// writeEntry renders one labeled line. Container labels keep the trailing
// space after the colon, mirroring the plain text outline.
func writeEntry(w io.Writer, label string, v any, prefix, indent string, width int) {
	if core.IsContainer(v) {
		fmt.Fprintln(w, prefix+label+": ")
		writeValue(w, v, prefix+indent, indent, width)
		return
	}

	used := lipgloss.Width(prefix+label) + 2
	literal := truncate(core.Literal(v), width-used)
	fmt.Fprintln(w, prefix+label+": "+scalarStyle(v).Render(literal))
}

func scalarStyle(v any) lipgloss.Style {
	switch core.KindOf(v) {
	case core.KindString:
		return styleString
	case core.KindNumber:
		return styleNumber
	case core.KindBool:
		return styleBool
	case core.KindNull:
		return styleNull
	default:
		return styleForeign
	}
}

// truncate shortens text to maxWidth, appending "..." if needed.
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// Format helpers mirrored from stat.

func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
