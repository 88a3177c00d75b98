// Package app binds configuration and comparison options to the core list
// operations. App is the single context object the command-line layer
// passes around; the core packages themselves hold no state and every call
// is a pure function over the texts it receives.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"listkit/internal/compare"
	"listkit/internal/convert"
	"listkit/internal/diff"
	"listkit/internal/listops"
	"listkit/internal/parser"
)

// App is the explicit context for one invocation: the active delimiter and
// the comparison options, resolved from config and flags.
type App struct {
	Delimiter parser.Delimiter
	Options   compare.Options
}

// New builds an App for the given delimiter name and options.
func New(delimiter string, opts compare.Options) (*App, error) {
	d, err := parser.FromName(delimiter)
	if err != nil {
		return nil, err
	}
	return &App{Delimiter: d, Options: opts}, nil
}

// Compare parses both texts with the active delimiter and computes the four
// set relationships.
func (a *App) Compare(textA, textB string) (compare.Result, error) {
	itemsA, err := parser.Parse(textA, a.Delimiter)
	if err != nil {
		return compare.Result{}, fmt.Errorf("list 1: %w", err)
	}
	itemsB, err := parser.Parse(textB, a.Delimiter)
	if err != nil {
		return compare.Result{}, fmt.Errorf("list 2: %w", err)
	}
	return compare.Compare(itemsA, itemsB, a.Options), nil
}

// Diff parses both texts and renders a unified diff of their literal
// content.
func (a *App) Diff(textA, textB string) (string, error) {
	itemsA, err := parser.Parse(textA, a.Delimiter)
	if err != nil {
		return "", fmt.Errorf("list 1: %w", err)
	}
	itemsB, err := parser.Parse(textB, a.Delimiter)
	if err != nil {
		return "", fmt.Errorf("list 2: %w", err)
	}
	return diff.Render(diff.Diff(itemsA, itemsB)), nil
}

// TrimDedup trims and deduplicates one list. It returns the new list text
// (one item per line) and a status message with the before/after counts.
func (a *App) TrimDedup(text string) (string, string, error) {
	items, err := parser.Parse(text, a.Delimiter)
	if err != nil {
		return "", "", err
	}
	if len(items) == 0 {
		return "", "No items to process", nil
	}
	out, before, after := listops.TrimDedup(items)
	status := fmt.Sprintf("Trim & Dedup: %d → %d items", before, after)
	return strings.Join(out, "\n"), status, nil
}

// Sort sorts one list, numerically when every item is a number. The result
// is rendered one item per line.
func (a *App) Sort(text string, descending bool) (string, error) {
	items, err := parser.Parse(text, a.Delimiter)
	if err != nil {
		return "", err
	}
	return strings.Join(listops.Sort(items, descending), "\n"), nil
}

// Filter keeps the items matching query, one per line.
func (a *App) Filter(text, query string, fuzzyMatch bool) (string, error) {
	items, err := parser.Parse(text, a.Delimiter)
	if err != nil {
		return "", err
	}
	return strings.Join(listops.Filter(items, query, fuzzyMatch), "\n"), nil
}

// Convert reparses text with explicit source and target delimiters,
// independent of the App's active delimiter.
func (a *App) Convert(text string, source, target parser.Delimiter) (convert.Output, error) {
	return convert.Convert(text, source, target)
}

// Result panel file names, matching what the interactive tool saved.
const (
	FileOnlyA        = "only_in_list1.txt"
	FileOnlyB        = "only_in_list2.txt"
	FileIntersection = "intersection.txt"
	FileUnion        = "union.txt"
)

// ResultPath resolves the default location of a result file: under
// $LISTKIT_DIR when set, otherwise the working directory.
func ResultPath(name string) string {
	base := os.Getenv("LISTKIT_DIR")
	if base == "" {
		base = "."
	}
	return filepath.Join(base, name)
}

// SaveResults writes the four comparison panels to dir as newline-joined
// text files and returns the written paths. Content passes through
// byte-for-byte; no format beyond the delimiter is imposed.
func SaveResults(res compare.Result, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	panels := []struct {
		name  string
		items []string
	}{
		{FileOnlyA, res.OnlyA},
		{FileOnlyB, res.OnlyB},
		{FileIntersection, res.Intersection},
		{FileUnion, res.Union},
	}

	paths := make([]string, 0, len(panels))
	for _, p := range panels {
		path := filepath.Join(dir, p.name)
		if err := os.WriteFile(path, []byte(strings.Join(p.items, "\n")), 0644); err != nil {
			return paths, fmt.Errorf("failed to save %s: %w", p.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
