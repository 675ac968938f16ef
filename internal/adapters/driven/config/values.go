// Package config holds the value conversions shared by the config stores.
//
// Values reach a store either from a decoded config.toml (int64, []any)
// or from settings code (int, []string). The helpers below accept both.
package config

// String returns v when it is a string and "" otherwise.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Int returns v as an int. TOML integers decode as int64 and JSON numbers
// as float64; anything else is 0.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// StringSlice returns v as a fresh []string. Non-string items of a decoded
// array are dropped. Returns nil when v is not a list.
func StringSlice(v any) []string {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Clone copies list values so that a stored value does not alias the
// caller's slice.
func Clone(v any) any {
	switch list := v.(type) {
	case []string:
		return StringSlice(list)
	case []any:
		out := make([]any, len(list))
		copy(out, list)
		return out
	default:
		return v
	}
}
