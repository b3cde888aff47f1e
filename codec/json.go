package codec

import "encoding/json"

// JSON is the stdlib-backed codec. Ordered documents (*recmap.Doc)
// marshal with field order preserved via their json.Marshaler.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Encode(v any) ([]byte, error) { return json.Marshal(v) }
func (JSON) Decode(b []byte) (any, error) {
	var v any
	err := json.Unmarshal(b, &v)
	return v, err
}
