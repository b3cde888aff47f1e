package recmap

import (
	"fmt"
)

// UnsupportedTypeError reports a declared type outside the supported shape
// grammar (e.g. a union that is not Optional, or an unresolved Ref).
type UnsupportedTypeError struct {
	Decl   string
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("recmap: unsupported type %s: %s", e.Decl, e.Reason)
}

// EncodeTypeError reports an in-memory value that disagrees with its
// declared shape during Serialize. Path is the dotted field path through
// nesting (e.g. "outer.inner.field", "items[2]").
type EncodeTypeError struct {
	Path string
	Want string
	Got  any
}

func (e *EncodeTypeError) Error() string {
	return fmt.Sprintf("recmap: encode %s: want %s, got %T", e.Path, e.Want, e.Got)
}

// DecodeTypeError reports incoming JSON-safe data whose runtime kind
// disagrees with the expected shape during Deserialize.
type DecodeTypeError struct {
	Path string
	Want string
	Got  any
}

func (e *DecodeTypeError) Error() string {
	return fmt.Sprintf("recmap: decode %s: want %s, got %T", e.Path, e.Want, e.Got)
}

// MissingRequiredFieldError reports a non-optional field with no usable
// value: missing or null with no declared default.
type MissingRequiredFieldError struct {
	Path string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("recmap: field %s is required (missing or null, no default)", e.Path)
}

// ContractViolationError reports a field whose contract predicate rejected
// the final decoded value.
type ContractViolationError struct {
	Path  string
	Value any
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("recmap: contract violated for %s (value %v)", e.Path, e.Value)
}

// joinPath appends a field name to a dotted path.
func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
