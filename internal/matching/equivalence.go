package matching

import "strings"

// Equivalence reports whether two skill names refer to the same skill. It is
// a pluggable strategy so the containment test can be replaced (e.g. with
// token-boundary matching) without touching the scoring weights.
type Equivalence func(a, b string) bool

// ContainsEquivalence matches when either name is a case-insensitive
// substring of the other, so "Node" in a job requirement matches "Node.js"
// from a resume and vice versa. Empty names never match.
func ContainsEquivalence(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}

	return strings.Contains(a, b) || strings.Contains(b, a)
}
