package laxjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedShape is returned when the top-level JSON value is not an
// array of objects, an array of plain values, or a single object.
var ErrUnsupportedShape = errors.New("json input must be an array or a single object")

// MalformedError reports JSON that is still syntactically invalid after the
// repair pass. Offset is the byte position reported by the decoder.
type MalformedError struct {
	Offset int64
	Err    error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed json at offset %d: %v", e.Offset, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Record is a flat key/value mapping decoded from one JSON object. Keys
// preserves the appearance order of the keys in the source text.
type Record struct {
	Keys   []string
	Values map[string]string
}

// Get returns the value for key, or the empty string when absent.
func (r Record) Get(key string) string {
	return r.Values[key]
}

// ParseItems repairs text and decodes it as a plain list for display. Array
// elements become items: strings keep their content, other scalars keep
// their JSON text, and objects contribute their values joined in key order.
// A single object is treated as a one-element array. The repaired text is
// returned so callers can echo the normalized JSON back to the user.
func ParseItems(text string) ([]string, string, error) {
	repaired := Repair(text)

	elems, err := topLevelValues(repaired)
	if err != nil {
		return nil, repaired, err
	}

	items := make([]string, 0, len(elems))
	for _, raw := range elems {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 {
			continue
		}
		switch trimmed[0] {
		case '{':
			rec, err := decodeRecord(trimmed)
			if err != nil {
				return nil, repaired, err
			}
			values := make([]string, 0, len(rec.Keys))
			for _, k := range rec.Keys {
				values = append(values, rec.Values[k])
			}
			items = append(items, strings.Join(values, ", "))
		case '[':
			return nil, repaired, ErrUnsupportedShape
		default:
			items = append(items, stringifyValue(trimmed))
		}
	}

	return items, repaired, nil
}

// ParseRecords repairs text and decodes it as an array of objects. A single
// object is treated as a one-element array; any non-object element fails
// with ErrUnsupportedShape. The repaired text is returned alongside.
func ParseRecords(text string) ([]Record, string, error) {
	repaired := Repair(text)

	elems, err := topLevelValues(repaired)
	if err != nil {
		return nil, repaired, err
	}

	records := make([]Record, 0, len(elems))
	for _, raw := range elems {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, repaired, ErrUnsupportedShape
		}
		rec, err := decodeRecord(trimmed)
		if err != nil {
			return nil, repaired, err
		}
		records = append(records, rec)
	}

	return records, repaired, nil
}

// topLevelValues validates the repaired text and splits the top-level value
// into its elements. Empty input yields no elements and no error.
func topLevelValues(repaired string) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(repaired)
	if trimmed == "" {
		return nil, nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, malformed(err)
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, malformed(err)
		}
		return elems, nil
	case '{':
		return []json.RawMessage{raw}, nil
	default:
		return nil, ErrUnsupportedShape
	}
}

// decodeRecord walks one object with a token decoder so key order survives.
func decodeRecord(raw []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	if _, err := dec.Token(); err != nil { // opening brace
		return Record{}, malformed(err)
	}

	rec := Record{Values: make(map[string]string)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Record{}, malformed(err)
		}
		key, ok := tok.(string)
		if !ok {
			return Record{}, &MalformedError{Offset: dec.InputOffset(), Err: fmt.Errorf("object key is %v", tok)}
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return Record{}, malformed(err)
		}

		if _, seen := rec.Values[key]; !seen {
			rec.Keys = append(rec.Keys, key)
		}
		rec.Values[key] = stringifyValue(bytes.TrimSpace(value))
	}

	return rec, nil
}

// stringifyValue flattens one JSON value to its display text: strings keep
// their content, everything else keeps its compact JSON form.
func stringifyValue(raw []byte) string {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil {
		return buf.String()
	}
	return string(raw)
}

func malformed(err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &MalformedError{Offset: syn.Offset, Err: err}
	}
	return &MalformedError{Err: err}
}
