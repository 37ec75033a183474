// Package render defines the interface for rendering trees into various
// output formats.
package render

import (
	"io"

	"github.com/sonnes/leafwalk/core"
)

// Renderer writes a tree to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, t *core.Tree) error
}
