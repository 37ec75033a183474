package mask

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sonnes/leafwalk/core"
)

// Config controls which rules the Masker applies.
type Config struct {
	// Keys masks values stored under secret-looking document keys.
	Keys bool
	// Values masks string spans that match secret value shapes.
	Values bool
	// ExtraKeys adds document key fragments to mask.
	ExtraKeys []string
	// ExtraRules adds custom value rules.
	ExtraRules []Rule
	// Allowlist holds regex patterns whose matches are never masked.
	Allowlist []string
}

// Masker applies masking rules to all values in a Tree.
type Masker struct {
	needles   []string
	rules     []Rule
	allowlist []*regexp.Regexp
}

// New creates a Masker from the given config.
func New(cfg Config) *Masker {
	var needles []string
	if cfg.Keys {
		needles = append(needles, KeyNeedles()...)
	}
	for _, k := range cfg.ExtraKeys {
		needles = append(needles, strings.ToLower(k))
	}

	var rules []Rule
	if cfg.Values {
		rules = append(rules, ValueRules()...)
	}
	rules = append(rules, cfg.ExtraRules...)

	allowlist := make([]*regexp.Regexp, 0, len(cfg.Allowlist))
	for _, pattern := range cfg.Allowlist {
		if re, err := regexp.Compile(pattern); err == nil {
			allowlist = append(allowlist, re)
		}
	}

	return &Masker{needles: needles, rules: rules, allowlist: allowlist}
}

// Transform implements core.Transformer.
func (m *Masker) Transform(t *core.Tree) error {
	t.Root = m.maskValue(t.Root, 0)
	return nil
}

// matchKey returns the needle a document key matched, if any.
func (m *Masker) matchKey(key string) (string, bool) {
	lower := strings.ToLower(key)
	for _, needle := range m.needles {
		if strings.Contains(lower, needle) {
			return needle, true
		}
	}
	return "", false
}

// maskString applies all value rules to s. Overlapping matches resolve to
// earliest start, then longest. Allowlisted values are skipped.
func (m *Masker) maskString(s string) string {
	if len(s) == 0 || len(m.rules) == 0 {
		return s
	}

	type replacement struct {
		start int
		end   int
		text  string
	}

	var reps []replacement
	for _, rule := range m.rules {
		for _, match := range rule.Detect(s) {
			if m.isAllowed(match.Value) {
				continue
			}
			reps = append(reps, replacement{
				start: match.Start,
				end:   match.End,
				text:  rule.Replacement(match),
			})
		}
	}

	if len(reps) == 0 {
		return s
	}

	// Sort by start position, then longest match first for ties.
	sort.Slice(reps, func(i, j int) bool {
		if reps[i].start != reps[j].start {
			return reps[i].start < reps[j].start
		}
		return reps[i].end > reps[j].end
	})

	// Apply non-overlapping replacements.
	var result []byte
	pos := 0
	for _, rep := range reps {
		if rep.start < pos {
			continue // overlaps with a previous replacement
		}
		result = append(result, s[pos:rep.start]...)
		result = append(result, rep.text...)
		pos = rep.end
	}
	result = append(result, s[pos:]...)
	return string(result)
}

func (m *Masker) isAllowed(value string) bool {
	for _, re := range m.allowlist {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}
