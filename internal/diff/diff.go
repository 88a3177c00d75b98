// Package diff computes a minimal line diff between two item lists and
// renders it as a unified diff.
package diff

// Diff aligns a and b with the classic longest-common-subsequence algorithm
// and emits the edit script: Context for items present in both, Removed for
// a-only items and Added for b-only items, with removals immediately
// preceding the additions that replace them at the same alignment gap.
//
// Equality is exact string match; comparison options never apply here, the
// diff shows literal content changes. Cost is O(len(a)*len(b)) time and
// space, which is fine for pasted lists but worth a warning from callers
// above tens of thousands of items.
func Diff(a, b []string) []Line {
	// table[i][j] holds the LCS length of a[i:] and b[j:].
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else if table[i+1][j] >= table[i][j+1] {
				table[i][j] = table[i+1][j]
			} else {
				table[i][j] = table[i][j+1]
			}
		}
	}

	lines := make([]Line, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			lines = append(lines, Line{Op: Context, Text: a[i]})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			lines = append(lines, Line{Op: Removed, Text: a[i]})
			i++
		default:
			lines = append(lines, Line{Op: Added, Text: b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		lines = append(lines, Line{Op: Removed, Text: a[i]})
	}
	for ; j < len(b); j++ {
		lines = append(lines, Line{Op: Added, Text: b[j]})
	}
	return lines
}
