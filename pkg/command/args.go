package command

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Args is the structured argument map carried by a command. All reads
// coerce with safe defaults, so a malformed or missing field can never
// abort a batch: numbers default to 0 behind a finite check, strings to
// empty, maps to empty. This is the single "coerce to schema"
// step; handlers never null-check inline.
type Args map[string]any

// String reads a string argument, defaulting to empty.
func (a Args) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// Int reads a numeric argument, defaulting to 0 for anything missing,
// non-numeric, or non-finite.
func (a Args) Int(key string) int {
	n, _ := a.IntOK(key)
	return n
}

// IntOK reads a numeric argument and reports whether a finite number was
// actually present, for callers that must distinguish "0" from "absent".
func (a Args) IntOK(key string) (int, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	return coerceInt(v)
}

// Map reads a nested argument map, defaulting to an empty Args.
func (a Args) Map(key string) Args {
	switch v := a[key].(type) {
	case Args:
		return v
	case map[string]any:
		return Args(v)
	}
	return Args{}
}

// IntMap reads a map of numeric values, dropping entries that do not
// coerce to a finite number.
func (a Args) IntMap(key string) map[string]int {
	src := a.Map(key)
	out := make(map[string]int, len(src))
	for k, v := range src {
		if n, ok := coerceInt(v); ok {
			out[k] = n
		}
	}
	return out
}

// Lower reads a string argument lowercased and trimmed.
func (a Args) Lower(key string) string {
	return strings.ToLower(strings.TrimSpace(a.String(key)))
}

func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case float32:
		return coerceInt(float64(n))
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return coerceInt(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return coerceInt(f)
	default:
		return 0, false
	}
}
