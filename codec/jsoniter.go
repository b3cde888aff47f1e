package codec

import jsoniter "github.com/json-iterator/go"

var fast = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONIter is a drop-in faster JSON codec backed by json-iterator.
// Semantics match the stdlib configuration, including json.Marshaler
// support for ordered documents.
type JSONIter struct{}

var _ Codec = JSONIter{}

func (JSONIter) Encode(v any) ([]byte, error) { return fast.Marshal(v) }
func (JSONIter) Decode(b []byte) (any, error) {
	var v any
	err := fast.Unmarshal(b, &v)
	return v, err
}
