// Package storage implements the data-access core: the naming bridge between
// presentation and column naming, generic table operations, and the domain
// facade consumed by the HTTP layer.
package storage

import "strings"

// snakeToCamel converts an underscore-joined key to camelCase. Only an
// underscore followed by a lowercase letter marks a word boundary.
func snakeToCamel(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		if key[i] == '_' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			b.WriteByte(key[i+1] - ('a' - 'A'))
			i++
			continue
		}
		b.WriteByte(key[i])
	}
	return b.String()
}

// camelToSnake converts a camelCase key to underscore-joined lowercase.
func camelToSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		if key[i] >= 'A' && key[i] <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(key[i] + ('a' - 'A'))
			continue
		}
		b.WriteByte(key[i])
	}
	return b.String()
}

// CamelKeys recursively rewrites map keys from snake_case to camelCase.
// Slices are transformed element-wise; scalars and nil pass through unchanged.
func CamelKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[snakeToCamel(k)] = CamelKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = CamelKeys(val)
		}
		return out
	default:
		return v
	}
}

// SnakeKeys recursively rewrites map keys from camelCase to snake_case.
// Slices are transformed element-wise; scalars and nil pass through unchanged.
func SnakeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[camelToSnake(k)] = SnakeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = SnakeKeys(val)
		}
		return out
	default:
		return v
	}
}
