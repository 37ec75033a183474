// Package prune provides a Transformer that bounds a tree for display:
// containers below a depth limit collapse into node-count summaries and
// long string scalars are clipped.
package prune

import (
	"fmt"

	"github.com/sonnes/leafwalk/core"
)

// Config controls the prune transformer behavior.
type Config struct {
	// MaxDepth is the number of container levels to keep. Containers
	// nested at this depth or deeper collapse into a summary scalar.
	// Zero disables the depth limit.
	MaxDepth int
	// MaxStringLen clips string scalars longer than this many runes.
	// Zero disables clipping.
	MaxStringLen int
}

// Pruner bounds tree depth and string length.
type Pruner struct {
	maxDepth  int
	maxString int
}

// New creates a Pruner from the given config.
func New(cfg Config) *Pruner {
	return &Pruner{maxDepth: cfg.MaxDepth, maxString: cfg.MaxStringLen}
}

// Transform implements core.Transformer.
func (p *Pruner) Transform(t *core.Tree) error {
	t.Root = p.pruneValue(t.Root, 0)
	return nil
}

func (p *Pruner) pruneValue(v any, depth int) any {
	switch val := v.(type) {
	case core.Document:
		if p.maxDepth > 0 && depth >= p.maxDepth {
			return nodeSummary(countDescendants(val))
		}
		for i := range val {
			val[i].Value = p.pruneValue(val[i].Value, depth+1)
		}
		return val
	case core.Array:
		if p.maxDepth > 0 && depth >= p.maxDepth {
			return nodeSummary(countDescendants(val))
		}
		for i := range val {
			val[i] = p.pruneValue(val[i], depth+1)
		}
		return val
	case string:
		return p.clipString(val)
	default:
		return v
	}
}

// nodeSummary returns a summary like "[pruned: 245 nodes]".
func nodeSummary(n int) string {
	if n == 1 {
		return "[pruned: 1 node]"
	}
	return fmt.Sprintf("[pruned: %d nodes]", n)
}

// countDescendants counts the nodes hidden by collapsing v.
func countDescendants(v any) int {
	n := -1 // the container itself stays visible as the summary
	_ = core.Walk(v, func(core.Path, any) error {
		n++
		return nil
	})
	return n
}

func (p *Pruner) clipString(s string) string {
	if p.maxString <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= p.maxString {
		return s
	}
	return fmt.Sprintf("%s [+%d chars]", string(runes[:p.maxString]), len(runes)-p.maxString)
}
