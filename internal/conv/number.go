package conv

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AsInt64 converts numeric values to int64; strings are rejected.
func AsInt64(value interface{}) (int64, bool) {
	switch actual := value.(type) {
	case float64:
		return int64(actual), true
	case float32:
		return int64(actual), true
	case int:
		return int64(actual), true
	case int32:
		return int64(actual), true
	case int64:
		return actual, true
	case uint32:
		return int64(actual), true
	case uint64:
		return int64(actual), true
	case json.Number:
		if n, err := actual.Int64(); err == nil {
			return n, true
		}
		if n, err := actual.Float64(); err == nil {
			return int64(n), true
		}
	}
	return 0, false
}

// ParseInt64 parses an integer or decimal string, truncating fractions.
func ParseInt64(text string) (int64, error) {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, nil
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", text, err)
	}
	return int64(n), nil
}
