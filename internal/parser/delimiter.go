package parser

import "fmt"

// Delimiter identifies how raw text is split into list items. JSON is a
// structured source format, not a literal separator: it is valid only when
// parsing, never as a join target.
type Delimiter int

const (
	Newline Delimiter = iota
	Tab
	Comma
	Semicolon
	JSON
)

// Rune returns the literal separator character. JSON has no separator;
// callers must branch on it before splitting or joining.
func (d Delimiter) Rune() rune {
	switch d {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Semicolon:
		return ';'
	case JSON:
		return '{' // parsing handles JSON specially
	default:
		return '\n'
	}
}

// DisplayName returns the short label used in status lines and flags.
func (d Delimiter) DisplayName() string {
	switch d {
	case Tab:
		return "\\t"
	case Comma:
		return ","
	case Semicolon:
		return ";"
	case JSON:
		return "JSON"
	default:
		return "\\n"
	}
}

// Next cycles to the following delimiter, wrapping after JSON.
func (d Delimiter) Next() Delimiter {
	switch d {
	case Newline:
		return Tab
	case Tab:
		return Comma
	case Comma:
		return Semicolon
	case Semicolon:
		return JSON
	default:
		return Newline
	}
}

// FromName resolves a delimiter from a flag or config value. Both names
// ("comma") and literal separators (",") are accepted.
func FromName(name string) (Delimiter, error) {
	switch name {
	case "newline", "\\n", "\n", "":
		return Newline, nil
	case "tab", "\\t", "\t":
		return Tab, nil
	case "comma", ",":
		return Comma, nil
	case "semicolon", ";":
		return Semicolon, nil
	case "json", "JSON":
		return JSON, nil
	default:
		return Newline, fmt.Errorf("unknown delimiter %q", name)
	}
}
