package models

import (
	"fmt"
	"strconv"
)

// Record is one persisted entity instance as a flat map of named fields.
// This is the shape the store reads from and writes to disk; the typed
// entities convert to and from it.
type Record map[string]any

// stringField extracts a required string field from a record.
func stringField(rec Record, key string) (string, error) {
	raw, ok := rec[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, raw)
	}
	return s, nil
}

// intField extracts a required integer field from a record. JSON decoding
// yields float64 for numbers, so integral floats are accepted, as are
// numeric strings; everything else is a coercion failure.
func intField(rec Record, key string) (int, error) {
	raw, ok := rec[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		n := int(v)
		if float64(n) != v {
			return 0, fmt.Errorf("field %q: %v is not an integer", key, v)
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("field %q: expected integer, got %T", key, raw)
	}
}
