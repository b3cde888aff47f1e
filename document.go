package recmap

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Doc is an ordered string-keyed mapping of JSON-safe values. Serialize
// emits records as Docs so field order in the output matches declaration
// order, which keeps wire output deterministic for diffing and tests.
type Doc struct {
	keys []string
	vals map[string]any
}

func NewDoc() *Doc {
	return &Doc{vals: make(map[string]any)}
}

// Set inserts or overwrites a key. An overwritten key keeps its original
// position.
func (d *Doc) Set(key string, v any) {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = v
}

func (d *Doc) Get(key string) (any, bool) {
	v, ok := d.vals[key]
	return v, ok
}

func (d *Doc) Len() int { return len(d.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (d *Doc) Keys() []string {
	return append([]string(nil), d.keys...)
}

// MarshalJSON emits the object with keys in insertion order.
func (d *Doc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// asMapping adapts the two accepted mapping representations (*Doc and
// map[string]any) to a common lookup view. keys are deterministic: Doc
// order for Docs, sorted for plain maps.
func asMapping(v any) (keys []string, get func(string) (any, bool), ok bool) {
	switch m := v.(type) {
	case *Doc:
		return m.keys, m.Get, true
	case map[string]any:
		ks := make([]string, 0, len(m))
		for k := range m {
			ks = append(ks, k)
		}
		sort.Strings(ks)
		return ks, func(k string) (any, bool) { v, ok := m[k]; return v, ok }, true
	default:
		return nil, nil, false
	}
}
