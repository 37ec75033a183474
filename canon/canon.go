// Package canon provides a Transformer that rewrites a tree into canonical
// key order for diff-friendly output.
package canon

import (
	"sort"

	"github.com/sonnes/leafwalk/core"
)

// Config controls canonicalization.
type Config struct {
	// SortKeys orders document entries by key, recursively.
	SortKeys bool
}

// Canonicalizer rewrites document entry order in place.
type Canonicalizer struct {
	sortKeys bool
}

// New creates a Canonicalizer from the given config.
func New(cfg Config) *Canonicalizer {
	return &Canonicalizer{sortKeys: cfg.SortKeys}
}

// Transform implements core.Transformer.
func (c *Canonicalizer) Transform(t *core.Tree) error {
	if !c.sortKeys {
		return nil
	}
	sortValue(t.Root)
	return nil
}

// sortValue sorts document entries depth first. The sort is stable, so
// programmatically built documents with repeated keys keep their relative
// order. Array element order is never touched.
func sortValue(v any) {
	switch val := v.(type) {
	case core.Document:
		for _, e := range val {
			sortValue(e.Value)
		}
		sort.SliceStable(val, func(i, j int) bool { return val[i].Key < val[j].Key })
	case core.Array:
		for _, el := range val {
			sortValue(el)
		}
	}
}
