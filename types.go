package recmap

import (
	"strings"
)

// TypeExpr is a field's declared type: a closed expression grammar over
// primitives, null, unions, sequences, mappings and nested records.
// Declarations are classified into a Shape by Resolve (or at Build time).
type TypeExpr interface {
	typeExpr()
	String() string
}

// PrimitiveKind enumerates the supported leaf value kinds.
type PrimitiveKind int

const (
	KindString PrimitiveKind = iota
	KindInt
	KindFloat
	KindBool
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

type primitiveExpr struct{ kind PrimitiveKind }

func (primitiveExpr) typeExpr()        {}
func (e primitiveExpr) String() string { return e.kind.String() }

type nullExpr struct{}

func (nullExpr) typeExpr()      {}
func (nullExpr) String() string { return "null" }

type unionExpr struct{ members []TypeExpr }

func (unionExpr) typeExpr() {}
func (e unionExpr) String() string {
	parts := make([]string, len(e.members))
	for i, m := range e.members {
		parts[i] = m.String()
	}
	return "Union[" + strings.Join(parts, ", ") + "]"
}

type sequenceExpr struct{ elem TypeExpr }

func (sequenceExpr) typeExpr()        {}
func (e sequenceExpr) String() string { return "Sequence[" + e.elem.String() + "]" }

type mappingExpr struct{ value TypeExpr }

func (mappingExpr) typeExpr()        {}
func (e mappingExpr) String() string { return "Mapping[" + e.value.String() + "]" }

type nestedExpr struct{ desc Descriptor }

func (nestedExpr) typeExpr()        {}
func (e nestedExpr) String() string { return "Record[" + e.desc.Name() + "]" }

type refExpr struct{ name string }

func (refExpr) typeExpr()        {}
func (e refExpr) String() string { return "Ref[" + e.name + "]" }

// String declares the string primitive.
func String() TypeExpr { return primitiveExpr{kind: KindString} }

// Int declares the integer primitive.
func Int() TypeExpr { return primitiveExpr{kind: KindInt} }

// Float declares the float primitive.
func Float() TypeExpr { return primitiveExpr{kind: KindFloat} }

// Bool declares the boolean primitive.
func Bool() TypeExpr { return primitiveExpr{kind: KindBool} }

// Null declares the null type. Only valid as a union member; a bare Null
// does not resolve.
func Null() TypeExpr { return nullExpr{} }

// Union declares a union of member types. Only the two-member form
// {T, null} (in either order) resolves, to Optional of T.
func Union(members ...TypeExpr) TypeExpr { return unionExpr{members: members} }

// Optional declares a type permitting null/absence. Sugar for
// Union(inner, Null()).
func Optional(inner TypeExpr) TypeExpr {
	return unionExpr{members: []TypeExpr{inner, nullExpr{}}}
}

// Sequence declares an ordered sequence of elem.
func Sequence(elem TypeExpr) TypeExpr { return sequenceExpr{elem: elem} }

// Mapping declares a string-keyed mapping with homogeneous value type.
func Mapping(value TypeExpr) TypeExpr { return mappingExpr{value: value} }

// Nested declares a nested record field by its built descriptor.
func Nested(d Descriptor) TypeExpr { return nestedExpr{desc: d} }

// Ref declares a nested record field by registered name. Resolved at
// Build time against the builder's Registry.
func Ref(name string) TypeExpr { return refExpr{name: name} }
