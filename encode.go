package recmap

import (
	"fmt"
	"sort"
)

// Serialize walks the instance field by field in declaration order and
// produces its JSON-safe representation. Encode hooks own their field's
// representation entirely; everything else dispatches on the resolved
// shape. Fails fast with the dotted path of the offending field.
func (t *Type[T]) Serialize(v *T) (*Doc, error) {
	return t.serializeAny(v, "")
}

func (t *Type[T]) serializeAny(v any, path string) (*Doc, error) {
	inst, ok := v.(*T)
	if !ok || inst == nil {
		p := path
		if p == "" {
			p = t.name
		}
		return nil, &EncodeTypeError{Path: p, Want: t.name, Got: v}
	}

	out := NewDoc()
	for _, f := range t.fields {
		fp := joinPath(path, f.name)
		val := f.get(inst)

		if f.encode != nil {
			enc, err := f.encode(val)
			if err != nil {
				return nil, fmt.Errorf("recmap: encode %s: %w", fp, err)
			}
			out.Set(f.name, enc)
			continue
		}

		enc, err := encodeShape(val, f.shape, fp)
		if err != nil {
			return nil, err
		}
		out.Set(f.name, enc)
	}
	return out, nil
}

func encodeShape(v any, s Shape, path string) (any, error) {
	if opt, ok := s.(OptionalShape); ok {
		if v == nil {
			return nil, nil
		}
		return encodeShape(v, opt.Inner, path)
	}
	if v == nil {
		return nil, &MissingRequiredFieldError{Path: path}
	}

	switch s := s.(type) {
	case PrimitiveShape:
		return encodePrimitive(v, s.Kind, path)

	case SequenceShape:
		seq, ok := v.([]any)
		if !ok {
			return nil, &EncodeTypeError{Path: path, Want: "sequence ([]any)", Got: v}
		}
		out := make([]any, len(seq))
		for i, item := range seq {
			enc, err := encodeShape(item, s.Elem, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil

	case MappingShape:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, &EncodeTypeError{Path: path, Want: "mapping (map[string]any)", Got: v}
		}
		// sorted keys keep repeated serialization byte-identical
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := NewDoc()
		for _, k := range keys {
			enc, err := encodeShape(m[k], s.Value, joinPath(path, k))
			if err != nil {
				return nil, err
			}
			out.Set(k, enc)
		}
		return out, nil

	case RecordShape:
		return s.Desc.serializeAny(v, path)

	default:
		return nil, &EncodeTypeError{Path: path, Want: s.String(), Got: v}
	}
}

// encodePrimitive normalizes the int family to int64 and the float family
// to float64; everything else passes through or fails.
func encodePrimitive(v any, k PrimitiveKind, path string) (any, error) {
	switch k {
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindInt:
		if n, ok := asInt64(v); ok {
			return n, nil
		}
	case KindFloat:
		if f, ok := asFloat64(v); ok {
			return f, nil
		}
	}
	return nil, &EncodeTypeError{Path: path, Want: k.String(), Got: v}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}
	if n, ok := asInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}
