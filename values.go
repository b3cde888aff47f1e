package recmap

import (
	"github.com/samber/lo"
)

// Accessors hand collection values to the engine as []any and
// map[string]any. These helpers bridge typed Go slices and maps across
// that boundary in both directions.

// Seq converts a typed slice into the engine's sequence representation.
// nil stays nil.
func Seq[E any](s []E) []any {
	if s == nil {
		return nil
	}
	return lo.ToAnySlice(s)
}

// SeqOf converts a decoded sequence back into a typed slice. ok is false
// when v is not a sequence or an element is not an E.
func SeqOf[E any](v any) ([]E, bool) {
	if v == nil {
		return nil, true
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, false
	}
	return lo.FromAnySlice[E](seq)
}

// Map converts a typed map into the engine's mapping representation.
// nil stays nil.
func Map[V any](m map[string]V) map[string]any {
	if m == nil {
		return nil
	}
	return lo.MapValues(m, func(v V, _ string) any { return v })
}

// MapOf converts a decoded mapping back into a typed map. ok is false
// when v is not a mapping or a value is not a V.
func MapOf[V any](v any) (map[string]V, bool) {
	if v == nil {
		return nil, true
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]V, len(m))
	for k, x := range m {
		xv, ok := x.(V)
		if !ok {
			return nil, false
		}
		out[k] = xv
	}
	return out, true
}
