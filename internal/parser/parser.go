// Package parser splits raw delimited text into ordered item lists and
// joins them back. All functions are pure; callers own every slice they
// receive.
package parser

import (
	"errors"
	"strings"

	"listkit/internal/laxjson"
)

// ErrJSONTarget is returned when JSON is requested as a join delimiter.
var ErrJSONTarget = errors.New("json is not a valid join delimiter")

// Parse splits text into items using the given delimiter. A trailing run of
// empty segments produced by trailing delimiters is dropped; interior empty
// segments are kept. Empty input yields an empty list, not an error.
//
// With the JSON delimiter the text is repaired and decoded instead; use
// ParseJSON when the repaired text is needed as well.
func Parse(text string, d Delimiter) ([]string, error) {
	if d == JSON {
		items, _, err := ParseJSON(text)
		return items, err
	}
	if text == "" {
		return nil, nil
	}

	// CRLF pastes would otherwise leave \r on every item.
	normalized := normalizeLineEndings(text)

	items := strings.Split(normalized, string(d.Rune()))
	for len(items) > 0 && items[len(items)-1] == "" {
		items = items[:len(items)-1]
	}
	return items, nil
}

// ParseJSON decodes text as lenient JSON into display items and returns the
// repaired text so the caller can show the normalized form.
func ParseJSON(text string) ([]string, string, error) {
	return laxjson.ParseItems(text)
}

// Join is the inverse of Parse for plain-text delimiters. Joining with JSON
// is rejected; CSV emission is the structured target instead.
func Join(items []string, d Delimiter) (string, error) {
	if d == JSON {
		return "", ErrJSONTarget
	}
	return strings.Join(items, string(d.Rune())), nil
}

// normalizeLineEndings rewrites CRLF and bare CR to LF so parsing behaves
// the same across platforms.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.ContainsRune(text, '\r') {
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	return text
}
