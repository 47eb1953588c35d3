// Package jsonfield decodes list-valued columns that historically held either
// a JSON array or a comma-separated string (images, tags, skills). Malformed
// input is reported to the caller instead of being silently collapsed to an
// empty list, so the API can surface it as a data-quality warning.
package jsonfield

import (
	"encoding/json"
	"strings"
)

// List is the decode result for a list-valued column.
type List struct {
	Values    []string
	Malformed bool
	Raw       string
}

// Decode parses raw as a JSON string array, falling back to CSV when the
// value does not start with '['. An empty value decodes to an empty list.
func Decode(raw string) List {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return List{Values: []string{}}
	}

	if strings.HasPrefix(trimmed, "[") {
		var values []string
		if err := json.Unmarshal([]byte(trimmed), &values); err != nil {
			return List{Values: []string{}, Malformed: true, Raw: raw}
		}
		return List{Values: values}
	}

	parts := strings.Split(trimmed, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return List{Values: values}
}

// Encode serializes values back to the JSON array form used for storage.
func Encode(values []string) string {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
