package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/leafwalk/core"
)

func keys(doc core.Document) []string {
	out := make([]string, len(doc))
	for i, e := range doc {
		out[i] = e.Key
	}
	return out
}

func TestSortKeysTopLevel(t *testing.T) {
	tree := &core.Tree{Root: core.Document{
		{Key: "zebra", Value: core.Number("1")},
		{Key: "apple", Value: core.Number("2")},
		{Key: "mango", Value: core.Number("3")},
	}}

	require.NoError(t, New(Config{SortKeys: true}).Transform(tree))

	assert.Equal(t, []string{"apple", "mango", "zebra"}, keys(tree.Root.(core.Document)))
}

func TestSortKeysRecursesIntoContainers(t *testing.T) {
	tree := &core.Tree{Root: core.Document{
		{Key: "outer", Value: core.Array{
			core.Document{
				{Key: "b", Value: core.Number("1")},
				{Key: "a", Value: core.Number("2")},
			},
		}},
	}}

	require.NoError(t, New(Config{SortKeys: true}).Transform(tree))

	inner := tree.Root.(core.Document)[0].Value.(core.Array)[0].(core.Document)
	assert.Equal(t, []string{"a", "b"}, keys(inner))
}

func TestSortKeysLeavesArrayOrder(t *testing.T) {
	tree := &core.Tree{Root: core.Array{
		core.Number("3"),
		core.Number("1"),
		core.Number("2"),
	}}

	require.NoError(t, New(Config{SortKeys: true}).Transform(tree))

	assert.Equal(t, core.Array{core.Number("3"), core.Number("1"), core.Number("2")}, tree.Root)
}

func TestSortKeysDisabled(t *testing.T) {
	tree := &core.Tree{Root: core.Document{
		{Key: "b", Value: core.Number("1")},
		{Key: "a", Value: core.Number("2")},
	}}

	require.NoError(t, New(Config{}).Transform(tree))

	assert.Equal(t, []string{"b", "a"}, keys(tree.Root.(core.Document)))
}

func TestSortKeysStable(t *testing.T) {
	tree := &core.Tree{Root: core.Document{
		{Key: "dup", Value: "first"},
		{Key: "aaa", Value: "x"},
		{Key: "dup", Value: "second"},
	}}

	require.NoError(t, New(Config{SortKeys: true}).Transform(tree))

	doc := tree.Root.(core.Document)
	assert.Equal(t, []string{"aaa", "dup", "dup"}, keys(doc))
	assert.Equal(t, "first", doc[1].Value)
	assert.Equal(t, "second", doc[2].Value)
}

func TestSortKeysScalarRoot(t *testing.T) {
	tree := &core.Tree{Root: "bare"}
	require.NoError(t, New(Config{SortKeys: true}).Transform(tree))
	assert.Equal(t, "bare", tree.Root)
}
