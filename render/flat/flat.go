// Package flat renders trees one leaf per line, for grepping and shell use.
package flat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/sonnes/leafwalk/core"
)

// Style selects the line format.
type Style string

const (
	// StylePaths renders dotted paths: a.b[0].c = literal
	StylePaths Style = "paths"
	// StyleEnv renders environment assignments: A_B_0_C=literal
	StyleEnv Style = "env"
)

// Renderer writes one line per leaf scalar, in document order.
type Renderer struct {
	// Style selects the line format. Empty means StylePaths.
	Style Style
}

// New creates a flat Renderer with the given style.
func New(style Style) *Renderer {
	return &Renderer{Style: style}
}

// Render writes the leaves of t.Root to w.
func (r *Renderer) Render(w io.Writer, t *core.Tree) error {
	style := r.Style
	if style == "" {
		style = StylePaths
	}
	return core.Walk(t.Root, func(path core.Path, v any) error {
		if core.IsContainer(v) {
			return nil
		}
		line := pathLine(path, v)
		if style == StyleEnv {
			line = envLine(path, v)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
		return nil
	})
}

// pathLine renders a.b[0].c = literal. A scalar root renders under ".".
func pathLine(path core.Path, v any) string {
	p := path.String()
	if p == "" {
		p = "."
	}
	return p + " = " + core.Literal(v)
}

// envLine renders A_B_0_C=literal with keys flattened to screaming snake
// case. A scalar root renders as VALUE.
func envLine(path core.Path, v any) string {
	segs := make([]string, 0, len(path))
	for _, s := range path {
		if s.Index >= 0 {
			segs = append(segs, strconv.Itoa(s.Index))
			continue
		}
		segs = append(segs, strcase.ToScreamingSnake(s.Key))
	}
	name := strings.Join(segs, "_")
	if name == "" {
		name = "VALUE"
	}
	return name + "=" + shellQuote(core.Literal(v))
}

// shellQuote single-quotes values that would need escaping in a shell.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\"'\\$`&|;<>()*?[]#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
