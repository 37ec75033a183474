package core

// Transformer mutates a Tree in place.
type Transformer interface {
	Transform(t *Tree) error
}

// Chain applies transformers in order, stopping at the first error.
func Chain(t *Tree, transformers ...Transformer) error {
	for _, tr := range transformers {
		if err := tr.Transform(t); err != nil {
			return err
		}
	}
	return nil
}
