// Package stat computes structure statistics for a tree and renders them as
// a compact report.
package stat

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sonnes/leafwalk/core"
)

// Stats summarizes the structure of a tree.
type Stats struct {
	// Nodes counts every container and scalar, including the root.
	Nodes     int
	Leaves    int
	Documents int
	Arrays    int
	// MaxDepth is the number of steps to the deepest node.
	MaxDepth int
	// DeepestPath locates one node at MaxDepth.
	DeepestPath string
	// ByKind counts leaves per scalar kind label.
	ByKind map[string]int
}

// Collect walks the tree once and fills Stats.
func Collect(t *core.Tree) Stats {
	s := Stats{ByKind: make(map[string]int)}
	_ = core.Walk(t.Root, func(path core.Path, v any) error {
		s.Nodes++
		if len(path) > s.MaxDepth {
			s.MaxDepth = len(path)
			s.DeepestPath = path.String()
		}
		switch k := core.KindOf(v); k {
		case core.KindDocument:
			s.Documents++
		case core.KindArray:
			s.Arrays++
		default:
			s.Leaves++
			s.ByKind[k.String()]++
		}
		return nil
	})
	return s
}

// Renderer renders the stat report for a tree.
type Renderer struct{}

// New creates a stat Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the report to w: a title row, the counter block in two rows
// (values then labels), leaf counts per kind, and the deepest path.
func (r *Renderer) Render(w io.Writer, t *core.Tree) error {
	title := styleTitle.Render(t.Name)
	if t.Size > 0 {
		title += "  " + styleMeta.Render(formatSize(t.Size))
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	s := Collect(t)
	writeCounters(w, s)

	if len(s.ByKind) > 0 {
		kinds := make([]string, 0, len(s.ByKind))
		for kind := range s.ByKind {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)

		parts := make([]string, len(kinds))
		for i, kind := range kinds {
			parts[i] = fmt.Sprintf("%s: %s", kind, formatNumber(s.ByKind[kind]))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  "+styleMeta.Render(strings.Join(parts, "  ")))
	}

	if s.DeepestPath != "" {
		fmt.Fprintln(w, "  "+styleMeta.Render("deepest: "+s.DeepestPath))
	}

	return nil
}

// writeCounters renders the counters in two rows: values then labels.
func writeCounters(w io.Writer, s Stats) {
	type counter struct {
		value int
		label string
	}
	counters := []counter{
		{s.Nodes, "NODES"},
		{s.Leaves, "LEAVES"},
		{s.Documents, "DOCUMENTS"},
		{s.Arrays, "ARRAYS"},
		{s.MaxDepth, "DEPTH"},
	}

	var values, labels []string
	for _, c := range counters {
		formatted := formatNumber(c.value)
		colWidth := max(len(formatted), len(c.label))
		values = append(values, fmt.Sprintf("%*s", colWidth, formatted))
		labels = append(labels, fmt.Sprintf("%-*s", colWidth, c.label))
	}

	fmt.Fprintln(w, "  "+styleStat.Render(strings.Join(values, "    ")))
	fmt.Fprintln(w, "  "+styleStatLabel.Render(strings.Join(labels, "    ")))
}

// formatNumber renders n as a comma-grouped decimal.
func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}

// formatSize renders a byte count in binary units.
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
