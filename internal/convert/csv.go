package convert

import (
	"encoding/csv"
	"errors"
	"strings"

	"listkit/internal/laxjson"
)

// ErrEmptyRecordSet is returned when CSV output is requested for zero
// records.
var ErrEmptyRecordSet = errors.New("no records to convert")

// ToCSV renders records as CSV text. The header row is the union of all
// record keys in first-seen order across the record sequence; missing keys
// produce empty fields. Fields containing the separator, a quote or a
// newline are quoted with internal quotes doubled. sep is the field
// separator, usually ','.
func ToCSV(records []laxjson.Record, sep rune) (string, error) {
	if len(records) == 0 {
		return "", ErrEmptyRecordSet
	}

	var header []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, k := range rec.Keys {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = sep

	if err := w.Write(header); err != nil {
		return "", err
	}
	row := make([]string, len(header))
	for _, rec := range records {
		for i, k := range header {
			row[i] = rec.Values[k]
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}
