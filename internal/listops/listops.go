// Package listops provides single-list transformations: trimming,
// deduplication, sorting and filtering.
package listops

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Trim strips leading and trailing whitespace from every item. Items that
// become empty are kept; removing them is a dedup policy, not a trim one.
func Trim(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.TrimSpace(item)
	}
	return out
}

// Dedup removes later duplicates, keeping the first occurrence. Equality is
// exact string match regardless of comparison options: this is a content
// identity operation, not a comparison.
func Dedup(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// TrimDedup trims every item and then removes duplicates, so "a" and " a "
// collapse into one. It reports the item counts before and after for status
// display.
func TrimDedup(items []string) (out []string, before, after int) {
	out = Dedup(Trim(items))
	return out, len(items), len(out)
}

// Sort returns a sorted copy of items. When every item parses as a decimal
// number after trimming, the whole list is sorted numerically; a single
// non-numeric item forces lexicographic order for the entire list. Equal
// items keep their original relative order.
func Sort(items []string, descending bool) []string {
	sorted := append([]string(nil), items...)

	if allNumeric(sorted) {
		sort.SliceStable(sorted, func(i, j int) bool {
			a, _ := strconv.ParseFloat(strings.TrimSpace(sorted[i]), 64)
			b, _ := strconv.ParseFloat(strings.TrimSpace(sorted[j]), 64)
			if descending {
				return b < a
			}
			return a < b
		})
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[j] < sorted[i]
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// Count returns the total number of items and the number of distinct items.
func Count(items []string) (total, unique int) {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		seen[item] = true
	}
	return len(items), len(seen)
}

// Filter keeps the items matching query, preserving order. Matching is
// case-insensitive substring search, or fuzzy matching when fuzzyMatch is
// set.
func Filter(items []string, query string, fuzzyMatch bool) []string {
	q := strings.ToLower(query)
	var out []string
	for _, item := range items {
		if fuzzyMatch {
			if fuzzy.MatchFold(q, strings.ToLower(item)) {
				out = append(out, item)
			}
		} else if strings.Contains(strings.ToLower(item), q) {
			out = append(out, item)
		}
	}
	return out
}

// allNumeric reports whether every item parses as a decimal number. The
// decision is all-or-nothing for the list so sort mode stays deterministic.
func allNumeric(items []string) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if _, err := strconv.ParseFloat(strings.TrimSpace(item), 64); err != nil {
			return false
		}
	}
	return true
}
