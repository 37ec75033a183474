package core

// Tree is the top-level container for a single decoded input.
type Tree struct {
	// Name labels the source: a file base name or "stdin".
	Name string
	// Root is the decoded value: a Document, an Array, or a scalar.
	Root any
	// Size is the decoded input size in bytes. Zero when unknown.
	Size int64
}
