package models

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// CoerceInt converts a raw JSON value to an int the way the API accepts
// prices: integer literals, float literals truncated toward zero, and
// strings holding a base-10 integer (surrounding whitespace allowed).
// Everything else, including null and booleans, is an error.
func CoerceInt(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, errors.New("value missing")
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil && num != "" {
		if i, err := num.Int64(); err == nil {
			return int(i), nil
		}
		f, err := num.Float64()
		if err != nil {
			return 0, errors.New("not an integer")
		}
		if f >= float64(math.MaxInt64) || f <= float64(math.MinInt64) {
			return 0, errors.New("value out of range")
		}
		return int(f), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, errors.New("not an integer")
		}
		return i, nil
	}

	return 0, errors.New("not an integer")
}
