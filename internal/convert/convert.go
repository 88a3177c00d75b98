// Package convert reparses a list under a different delimiter and
// re-serializes it, including the JSON-to-CSV path.
package convert

import (
	"strings"

	"listkit/internal/laxjson"
	"listkit/internal/parser"
)

// Output is the result of a delimiter conversion.
type Output struct {
	// Items is the converted content as display lines.
	Items []string
	// Serialized is the converted content joined with the target
	// delimiter, ready to copy or save.
	Serialized string
	// Repaired holds the normalized JSON when the source was JSON, so the
	// caller can echo it back to the user.
	Repaired string
}

// Convert reparses text under the source delimiter and re-serializes it
// with the target delimiter. A JSON source holding objects decodes to
// records and emits CSV with the target separator; a JSON source holding
// plain values behaves like any other list source. JSON is never a valid
// target.
func Convert(text string, source, target parser.Delimiter) (Output, error) {
	if target == parser.JSON {
		return Output{}, parser.ErrJSONTarget
	}

	if source == parser.JSON {
		return convertJSON(text, target)
	}

	items, err := parser.Parse(text, source)
	if err != nil {
		return Output{}, err
	}
	serialized, err := parser.Join(items, target)
	if err != nil {
		return Output{}, err
	}
	return Output{Items: displayItems(items, serialized, target), Serialized: serialized}, nil
}

func convertJSON(text string, target parser.Delimiter) (Output, error) {
	items, repaired, err := laxjson.ParseItems(text)
	if err != nil {
		return Output{Repaired: repaired}, err
	}

	// Objects get the structured treatment: one CSV row per record.
	records, _, rerr := laxjson.ParseRecords(text)
	if rerr == nil && len(records) > 0 {
		sep := target.Rune()
		if target == parser.Newline {
			sep = ','
		}
		csvText, err := ToCSV(records, sep)
		if err != nil {
			return Output{Repaired: repaired}, err
		}
		return Output{
			Items:      strings.Split(csvText, "\n"),
			Serialized: csvText,
			Repaired:   repaired,
		}, nil
	}

	serialized, err := parser.Join(items, target)
	if err != nil {
		return Output{Repaired: repaired}, err
	}
	return Output{Items: displayItems(items, serialized, target), Serialized: serialized, Repaired: repaired}, nil
}

// displayItems mirrors the output panel: one line per item when the target
// is newline, otherwise the single serialized line.
func displayItems(items []string, serialized string, target parser.Delimiter) []string {
	if len(items) == 0 {
		return nil
	}
	if target == parser.Newline {
		return append([]string(nil), items...)
	}
	return []string{serialized}
}
