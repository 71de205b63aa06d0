// Package strings provides string manipulation utilities.
package strings

import "strings"

// CollapseSpace trims s and replaces every run of whitespace (including
// non-breaking spaces) with a single ASCII space.
//
//	CollapseSpace("  North  Korea\n") // "North Korea"
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DedupeAndTrim removes duplicates and empty strings from a slice,
// collapsing whitespace in each element. Order is preserved.
//
//	DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  "})
//	// Returns: []string{"foo", "bar"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := CollapseSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// DedupeFold is like DedupeAndTrim but treats values differing only in case
// as duplicates. The first spelling seen wins.
//
//	DedupeFold([]string{"Gambling", "gambling ", "Betting"})
//	// Returns: []string{"Gambling", "Betting"}
func DedupeFold(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := CollapseSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// ContainsAnyFold reports whether s contains any of the needles, ignoring case.
func ContainsAnyFold(s string, needles ...string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if n != "" && strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
