package recmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Check validates an in-memory instance without serializing it:
// nullability of non-optional fields and contract predicates, recursing
// into nested records. Fails fast with the dotted path of the first
// violation.
func (t *Type[T]) Check(v *T) error {
	return t.checkAny(v, "")
}

func (t *Type[T]) checkAny(v any, path string) error {
	inst, ok := v.(*T)
	if !ok || inst == nil {
		p := path
		if p == "" {
			p = t.name
		}
		return &EncodeTypeError{Path: p, Want: t.name, Got: v}
	}

	for _, f := range t.fields {
		fp := joinPath(path, f.name)
		val := f.get(inst)

		if val == nil {
			if _, optional := f.shape.(OptionalShape); !optional {
				return &MissingRequiredFieldError{Path: fp}
			}
			continue
		}
		if f.contract != nil && !f.contract(val) {
			return &ContractViolationError{Path: fp, Value: val}
		}
		if d, ok := recordDesc(f.shape); ok {
			if err := d.checkAny(val, fp); err != nil {
				return err
			}
		}
	}
	return nil
}

// recordDesc unwraps Optional to find a nested record descriptor.
func recordDesc(s Shape) (Descriptor, bool) {
	for {
		switch sh := s.(type) {
		case OptionalShape:
			s = sh.Inner
		case RecordShape:
			return sh.Desc, true
		default:
			return nil, false
		}
	}
}

// Validate runs Check and then proves the instance survives a full round
// trip: serialize, re-decode, re-serialize, compare the JSON-safe forms.
// Useful as a definition-time smoke test for custom encode/decode hooks.
func (t *Type[T]) Validate(v *T) error {
	if err := t.Check(v); err != nil {
		return err
	}

	doc, err := t.Serialize(v)
	if err != nil {
		return err
	}
	want, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	rt, err := t.Deserialize(doc)
	if err != nil {
		return fmt.Errorf("recmap: %s did not round-trip: %w", t.name, err)
	}
	doc2, err := t.Serialize(rt)
	if err != nil {
		return fmt.Errorf("recmap: %s did not round-trip: %w", t.name, err)
	}
	got, err := json.Marshal(doc2)
	if err != nil {
		return err
	}
	if !bytes.Equal(want, got) {
		return fmt.Errorf("recmap: %s did not round-trip: %s != %s", t.name, want, got)
	}
	return nil
}
