// Package codec turns JSON-safe values (the engine's value domain) into
// wire bytes and back. The mapping engine never touches text encoding
// itself; this package is the boundary collaborator it hands off to.
package codec

// Codec encodes/decodes JSON-safe values to wire bytes.
//
// Decode yields the generic JSON value domain (map[string]any, []any,
// float64, string, bool, nil), which recmap's Deserialize accepts
// directly.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(b []byte) (any, error)
}
