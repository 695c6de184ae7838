package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// encodeValue serializes a profile value for SQLite storage. Values are
// JSON so strings, numbers, bools and slices round-trip losslessly.
func encodeValue(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding profile value: %w", err)
	}
	return string(data), nil
}

// decodeValue deserializes a stored profile value. Numbers come back as
// float64 and slices as []any; the domain helpers accept both shapes.
func decodeValue(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("decoding profile value: %w", err)
	}
	return v, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// parseTime parses an RFC3339 timestamp, returning the zero time on
// malformed input rather than failing a whole row scan.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
