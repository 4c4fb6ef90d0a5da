package domain

import "encoding/json"

// Number returns v as a float64 when it holds a numeric value. Stores decode
// numbers into different Go types, so every integer and float kind is accepted.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Strings returns the string entries of a sequence value. ok is false when v
// is not a sequence. Non-string entries are skipped.
func Strings(v any) (out []string, ok bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out = make([]string, 0, len(s))
		for _, item := range s {
			if str, isStr := item.(string); isStr {
				out = append(out, str)
			}
		}
		return out, true
	}
	return nil, false
}
