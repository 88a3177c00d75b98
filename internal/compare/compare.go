// Package compare computes the set relationships between two item lists.
package compare

import (
	"fmt"
	"strings"
)

// Options control how items from the two lists are considered equal. The
// value is passed explicitly into every comparison; there is no hidden
// state.
type Options struct {
	CaseSensitive bool
	Trim          bool
}

// DefaultOptions matches the interactive defaults: case-insensitive,
// whitespace-trimmed comparison.
func DefaultOptions() Options {
	return Options{CaseSensitive: false, Trim: true}
}

// Key returns the normalized form of an item used for equality and
// membership. The original item text is what gets stored in results.
func (o Options) Key(item string) string {
	key := item
	if o.Trim {
		key = strings.TrimSpace(key)
	}
	if !o.CaseSensitive {
		key = strings.ToLower(key)
	}
	return key
}

// Result holds the four set relationships between two lists. Every list is
// deduplicated by comparison key and preserves first-occurrence order from
// its source list(s); when a key exists in both inputs, list 1's text is
// the representative.
type Result struct {
	OnlyA        []string
	OnlyB        []string
	Intersection []string
	Union        []string
}

// Summary returns the one-line count overview shown after a compare.
func (r Result) Summary() string {
	return fmt.Sprintf("Only L1: %d | Only L2: %d | Inter: %d | Union: %d",
		len(r.OnlyA), len(r.OnlyB), len(r.Intersection), len(r.Union))
}

// Compare computes the set relationships between a and b. The union is all
// of a's distinct items in a's order followed by b's items whose key did
// not already appear in a.
func Compare(a, b []string, opts Options) Result {
	keysA := keySet(a, opts)
	keysB := keySet(b, opts)

	var res Result

	seenA := make(map[string]bool, len(a))
	for _, item := range a {
		k := opts.Key(item)
		if seenA[k] {
			continue
		}
		seenA[k] = true
		if keysB[k] {
			res.Intersection = append(res.Intersection, item)
		} else {
			res.OnlyA = append(res.OnlyA, item)
		}
		res.Union = append(res.Union, item)
	}

	seenB := make(map[string]bool, len(b))
	for _, item := range b {
		k := opts.Key(item)
		if seenB[k] || keysA[k] {
			continue
		}
		seenB[k] = true
		res.OnlyB = append(res.OnlyB, item)
		res.Union = append(res.Union, item)
	}

	return res
}

func keySet(items []string, opts Options) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[opts.Key(item)] = true
	}
	return set
}
