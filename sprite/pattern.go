package sprite

import (
	"fmt"
	"strings"
)

// Pattern selects one of the fixed snowflake shapes
type Pattern int

const (
	Dot Pattern = iota
	Branches
	Spearheads
	Asterisk
)

// Count is the number of patterns, and so the number of cached rasters
const Count = 4

var patternNames = [Count]string{
	Dot:        "dot",
	Branches:   "branches",
	Spearheads: "spearheads",
	Asterisk:   "asterisk",
}

// Patterns returns every pattern in index order
func Patterns() []Pattern {
	return []Pattern{Dot, Branches, Spearheads, Asterisk}
}

// Valid reports whether p is one of the four defined patterns
func (p Pattern) Valid() bool {
	return p >= Dot && p <= Asterisk
}

func (p Pattern) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

// ParsePattern converts a lower-case pattern name back into a Pattern
func ParsePattern(name string) (Pattern, error) {
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pattern %q", name)
}

// ParsePatterns resolves a list of names, preserving order and dropping
// duplicates. An empty list selects every pattern.
func ParsePatterns(names []string) ([]Pattern, error) {
	if len(names) == 0 {
		return Patterns(), nil
	}
	var seen [Count]bool
	out := make([]Pattern, 0, len(names))
	for _, name := range names {
		p, err := ParsePattern(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return nil, err
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}
