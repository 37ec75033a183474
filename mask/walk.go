package mask

import "github.com/sonnes/leafwalk/core"

const maxWalkDepth = 64

// maskValue rewrites v in place: entry values under secret keys collapse to
// a mask marker, string leaves get their secret-shaped spans replaced.
// Container values under a matched key are masked whole.
func (m *Masker) maskValue(v any, depth int) any {
	if depth > maxWalkDepth {
		return v
	}
	switch val := v.(type) {
	case core.Document:
		for i := range val {
			if name, ok := m.matchKey(val[i].Key); ok && !m.entryAllowed(val[i].Value) {
				val[i].Value = "[masked:" + name + "]"
				continue
			}
			val[i].Value = m.maskValue(val[i].Value, depth+1)
		}
		return val
	case core.Array:
		for i := range val {
			val[i] = m.maskValue(val[i], depth+1)
		}
		return val
	case string:
		return m.maskString(val)
	default:
		return v
	}
}

// entryAllowed reports whether a key-matched entry holds an allowlisted
// string value.
func (m *Masker) entryAllowed(v any) bool {
	s, ok := v.(string)
	return ok && m.isAllowed(s)
}
