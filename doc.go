// Package recmap maps typed record instances to JSON-safe values and back,
// driven by explicit per-type descriptors instead of reflection. Encoding and
// decoding recurse structurally through nested records, optional fields and
// collections; per-field metadata (encode/decode hooks, contracts, defaults)
// overrides the shape-driven behavior.
//
// Components:
//   - TypeExpr / Shape: declared field types and their resolved structural
//     categories (primitive, optional, sequence, mapping, nested record).
//   - Type[T] / Builder[T]: record type descriptors bound to a Go struct via
//     accessor/mutator pairs fixed at definition time.
//   - Registry: named descriptor table; resolves Ref() type expressions.
//   - codec.Codec: boundary JSON codec turning JSON-safe values into wire
//     bytes (encoding/json or json-iterator).
//
// Value domain (JSON-safe): nil, bool, int64, float64, string, []any and
// *Doc (ordered string-keyed mapping). Decoding additionally accepts
// map[string]any wherever a mapping is expected, so output of any JSON
// decoder feeds straight into Deserialize.
//
// Serialize/Deserialize pattern:
//
//	doc, _ := userType.Serialize(&u)         // *Doc, field order = declaration order
//	b, _   := codec.JSON{}.Encode(doc)       // wire bytes
//	v, _   := codec.JSON{}.Decode(b)         // map[string]any
//	u2, _  := userType.Deserialize(v)        // *User
//
// Descriptors are immutable after Build; Serialize and Deserialize hold no
// state and are safe for concurrent use. Metadata hooks must be side-effect
// free with respect to shared state, or the caller owns their synchronization.
package recmap
