package recmap

import (
	"fmt"
	"math"
)

// Deserialize reconstructs a typed instance from JSON-safe data (*Doc or
// map[string]any, i.e. Serialize output or any JSON decoder's output).
// Per field: decode hook short-circuits shape recursion; then nullability
// (absent with a declared default takes the default, absent or null
// without one fails unless the field is optional), then the contract.
// Atomic: no partially decoded instance is returned on failure.
func (t *Type[T]) Deserialize(data any) (*T, error) {
	v, err := t.deserializeAny(data, "")
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

func (t *Type[T]) deserializeAny(data any, path string) (any, error) {
	_, get, ok := asMapping(data)
	if !ok {
		p := path
		if p == "" {
			p = t.name
		}
		return nil, &DecodeTypeError{Path: p, Want: "mapping", Got: data}
	}

	inst := new(T)
	for _, f := range t.fields {
		fp := joinPath(path, f.name)
		raw, present := get(f.name)

		var val any
		switch {
		case !present && f.hasDefault:
			val = f.defaultValue()

		case f.decode != nil:
			v, err := f.decode(raw)
			if err != nil {
				return nil, fmt.Errorf("recmap: decode %s: %w", fp, err)
			}
			val = v

		default:
			v, err := decodeShape(raw, f.shape, fp)
			if err != nil {
				return nil, err
			}
			val = v
		}

		if val == nil {
			if _, optional := f.shape.(OptionalShape); !optional {
				return nil, &MissingRequiredFieldError{Path: fp}
			}
		}
		if f.contract != nil && val != nil && !f.contract(val) {
			return nil, &ContractViolationError{Path: fp, Value: val}
		}

		f.set(inst, val)
	}
	return inst, nil
}

func decodeShape(raw any, s Shape, path string) (any, error) {
	if opt, ok := s.(OptionalShape); ok {
		if raw == nil {
			return nil, nil
		}
		return decodeShape(raw, opt.Inner, path)
	}
	if raw == nil {
		return nil, &MissingRequiredFieldError{Path: path}
	}

	switch s := s.(type) {
	case PrimitiveShape:
		return decodePrimitive(raw, s.Kind, path)

	case SequenceShape:
		seq, ok := raw.([]any)
		if !ok {
			return nil, &DecodeTypeError{Path: path, Want: "sequence", Got: raw}
		}
		out := make([]any, len(seq))
		for i, item := range seq {
			v, err := decodeShape(item, s.Elem, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case MappingShape:
		keys, get, ok := asMapping(raw)
		if !ok {
			return nil, &DecodeTypeError{Path: path, Want: "mapping", Got: raw}
		}
		out := make(map[string]any, len(keys))
		for _, k := range keys {
			rv, _ := get(k)
			v, err := decodeShape(rv, s.Value, joinPath(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil

	case RecordShape:
		return s.Desc.deserializeAny(raw, path)

	default:
		return nil, &DecodeTypeError{Path: path, Want: s.String(), Got: raw}
	}
}

// decodePrimitive checks the raw value's runtime kind against the declared
// one. JSON decoders hand numbers over as float64; integral floats are
// accepted for int fields and normalized to int64.
func decodePrimitive(raw any, k PrimitiveKind, path string) (any, error) {
	switch k {
	case KindString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case KindBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case KindInt:
		if n, ok := asInt64(raw); ok {
			return n, nil
		}
		if f, ok := raw.(float64); ok && f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int64(f), nil
		}
	case KindFloat:
		if f, ok := asFloat64(raw); ok {
			return f, nil
		}
	}
	return nil, &DecodeTypeError{Path: path, Want: k.String(), Got: raw}
}
