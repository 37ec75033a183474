package core

import (
	"errors"
	"strconv"
	"strings"
)

// SkipChildren is returned by a WalkFunc to prune descent below the current
// container. Walk does not surface it as an error.
var SkipChildren = errors.New("skip children")

// Step is one segment of a Path. Document entries carry a Key; array
// elements carry an Index. Index is -1 for entry steps.
type Step struct {
	Key   string
	Index int
}

// KeyStep returns the Step for a document entry.
func KeyStep(key string) Step { return Step{Key: key, Index: -1} }

// IndexStep returns the Step for an array element.
func IndexStep(i int) Step { return Step{Index: i} }

func (s Step) String() string {
	if s.Index >= 0 {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	if isIdent(s.Key) {
		return s.Key
	}
	return "[" + strconv.Quote(s.Key) + "]"
}

// Path locates a node in a tree. The root has an empty path.
type Path []Step

// String renders the path in dotted form: a.b[0].c. Keys that are not plain
// identifiers appear bracketed and quoted.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if s.Index < 0 && isIdent(s.Key) {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.Key)
			continue
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// WalkFunc visits one node. The path slice is reused between visits and is
// only valid until the next call; callers that retain it must copy.
type WalkFunc func(path Path, v any) error

// Walk visits every node of root depth-first in document order: a container
// before its children, document entries in stored order, array elements by
// ascending index. Returning SkipChildren from fn prunes descent below the
// current container; any other error stops the walk and is returned.
func Walk(root any, fn WalkFunc) error {
	return walk(root, make(Path, 0, 8), fn)
}

func walk(v any, path Path, fn WalkFunc) error {
	if err := fn(path, v); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	switch val := v.(type) {
	case Document:
		for _, e := range val {
			if err := walk(e.Value, append(path, KeyStep(e.Key)), fn); err != nil {
				return err
			}
		}
	case Array:
		for i, el := range val {
			if err := walk(el, append(path, IndexStep(i)), fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
