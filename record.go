package recmap

import (
	"fmt"
)

// Descriptor is the type-erased view of a built record type, used for
// nested recursion and registry storage. Only *Type[T] implements it.
type Descriptor interface {
	Name() string
	FieldNames() []string

	serializeAny(v any, path string) (*Doc, error)
	deserializeAny(data any, path string) (any, error)
	checkAny(v any, path string) error
}

// field is one bound field declaration: name, declared type, resolved
// shape, erased accessor/mutator and the metadata bundle.
type field struct {
	name  string
	expr  TypeExpr
	shape Shape

	get func(any) any
	set func(any, any)

	encode   func(any) (any, error)
	decode   func(any) (any, error)
	contract func(any) bool

	def        any
	defFn      func() any
	hasDefault bool
}

func (f *field) defaultValue() any {
	if f.defFn != nil {
		return f.defFn()
	}
	return f.def
}

// FieldOption attaches metadata to a field declaration.
type FieldOption func(*field)

// WithEncode overrides encoding for the field. The hook fully owns the
// field's JSON-safe representation; no shape recursion happens below it.
// A field declaring encode must declare decode too (Build enforces it).
func WithEncode(fn func(v any) (any, error)) FieldOption {
	return func(f *field) { f.encode = fn }
}

// WithDecode overrides decoding for the field. The hook receives the raw
// JSON-safe sub-value (nil when absent) and its result is the field's
// final in-memory value; no shape recursion happens for the field.
func WithDecode(fn func(raw any) (any, error)) FieldOption {
	return func(f *field) { f.decode = fn }
}

// WithContract attaches a validation predicate, evaluated on the final
// in-memory value during Deserialize and Check. Not called on nil.
func WithContract(fn func(v any) bool) FieldOption {
	return func(f *field) { f.contract = fn }
}

// WithDefault sets the in-memory value used when the field is absent from
// the input entirely. An explicit null never takes the default.
func WithDefault(v any) FieldOption {
	return func(f *field) {
		f.def = v
		f.defFn = nil
		f.hasDefault = true
	}
}

// WithDefaultFunc is WithDefault with a fresh value per instance, for
// mutable defaults like slices and maps.
func WithDefaultFunc(fn func() any) FieldOption {
	return func(f *field) {
		f.def = nil
		f.defFn = fn
		f.hasDefault = true
	}
}

// Builder declares a record type over the Go struct T. Fields are bound in
// declaration order with accessor/mutator pairs; Build resolves every
// declared type and freezes the descriptor.
type Builder[T any] struct {
	name   string
	reg    *Registry
	fields []*field
	err    error // first definition error, surfaced at Build
}

// NewType starts a record type declaration named name.
func NewType[T any](name string) *Builder[T] {
	return &Builder[T]{name: name}
}

// Registry binds the builder to a registry: Ref() expressions resolve
// against it and the built type is registered into it.
func (b *Builder[T]) Registry(r *Registry) *Builder[T] {
	b.reg = r
	return b
}

// Field declares the next field. get must return untyped nil for absent
// values (a typed nil pointer boxed in any is not nil); set must tolerate
// nil for optional fields. Collection values cross the boundary as []any
// and map[string]any (see Seq/Map helpers).
func (b *Builder[T]) Field(name string, typ TypeExpr, get func(*T) any, set func(*T, any), opts ...FieldOption) *Builder[T] {
	if b.err != nil {
		return b
	}
	for _, f := range b.fields {
		if f.name == name {
			b.err = fmt.Errorf("recmap: %s: duplicate field %q", b.name, name)
			return b
		}
	}
	f := &field{
		name: name,
		expr: typ,
		get:  func(v any) any { return get(v.(*T)) },
		set:  func(v, x any) { set(v.(*T), x) },
	}
	for _, opt := range opts {
		opt(f)
	}
	b.fields = append(b.fields, f)
	return b
}

// Build resolves all field types and returns the frozen descriptor.
func (b *Builder[T]) Build() (*Type[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	for _, f := range b.fields {
		if f.encode != nil && f.decode == nil {
			return nil, fmt.Errorf("recmap: %s.%s: encode declared without decode", b.name, f.name)
		}
		s, err := resolveIn(f.expr, b.reg)
		if err != nil {
			return nil, err
		}
		f.shape = s
	}
	t := &Type[T]{name: b.name, fields: b.fields}
	if b.reg != nil {
		if err := b.reg.Register(t); err != nil {
			return nil, err
		}
		b.reg.log.Debug("record type built", Fields{"type": b.name, "fields": len(b.fields)})
	}
	return t, nil
}

// MustBuild is Build panicking on error, for package-level declarations.
func (b *Builder[T]) MustBuild() *Type[T] {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// Type is the frozen descriptor of a record type over the Go struct T.
// Immutable after Build; all methods are safe for concurrent use.
type Type[T any] struct {
	name   string
	fields []*field
}

var _ Descriptor = (*Type[struct{}])(nil)

func (t *Type[T]) Name() string { return t.name }

// FieldNames returns the field names in declaration order.
func (t *Type[T]) FieldNames() []string {
	out := make([]string, len(t.fields))
	for i, f := range t.fields {
		out[i] = f.name
	}
	return out
}
