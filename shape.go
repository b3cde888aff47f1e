package recmap

// Shape is the resolved structural category of a declared type: the closed
// set the encode/decode walks dispatch on.
type Shape interface {
	shape()
	String() string
}

type PrimitiveShape struct{ Kind PrimitiveKind }

func (PrimitiveShape) shape()           {}
func (s PrimitiveShape) String() string { return s.Kind.String() }

type OptionalShape struct{ Inner Shape }

func (OptionalShape) shape()           {}
func (s OptionalShape) String() string { return "Optional[" + s.Inner.String() + "]" }

type SequenceShape struct{ Elem Shape }

func (SequenceShape) shape()           {}
func (s SequenceShape) String() string { return "Sequence[" + s.Elem.String() + "]" }

type MappingShape struct{ Value Shape }

func (MappingShape) shape()           {}
func (s MappingShape) String() string { return "Mapping[" + s.Value.String() + "]" }

type RecordShape struct{ Desc Descriptor }

func (RecordShape) shape()           {}
func (s RecordShape) String() string { return "Record[" + s.Desc.Name() + "]" }

// Resolve classifies a declared type into its Shape. Pure: same expression,
// same result. Ref expressions need a Registry and only resolve during
// Build; here they fail with *UnsupportedTypeError.
func Resolve(expr TypeExpr) (Shape, error) {
	return resolveIn(expr, nil)
}

func resolveIn(expr TypeExpr, reg *Registry) (Shape, error) {
	switch e := expr.(type) {
	case primitiveExpr:
		return PrimitiveShape{Kind: e.kind}, nil

	case nullExpr:
		return nil, &UnsupportedTypeError{
			Decl:   e.String(),
			Reason: "null is only valid as a union member",
		}

	case unionExpr:
		return resolveUnion(e, reg)

	case sequenceExpr:
		elem, err := resolveIn(e.elem, reg)
		if err != nil {
			return nil, err
		}
		return SequenceShape{Elem: elem}, nil

	case mappingExpr:
		value, err := resolveIn(e.value, reg)
		if err != nil {
			return nil, err
		}
		return MappingShape{Value: value}, nil

	case nestedExpr:
		return RecordShape{Desc: e.desc}, nil

	case refExpr:
		if reg == nil {
			return nil, &UnsupportedTypeError{
				Decl:   e.String(),
				Reason: "reference requires a registry",
			}
		}
		d, ok := reg.Lookup(e.name)
		if !ok {
			return nil, &UnsupportedTypeError{
				Decl:   e.String(),
				Reason: "no such registered type",
			}
		}
		return RecordShape{Desc: d}, nil

	default:
		return nil, &UnsupportedTypeError{
			Decl:   expr.String(),
			Reason: "unknown type expression",
		}
	}
}

// resolveUnion admits exactly the {T, null} form and yields Optional of T.
func resolveUnion(e unionExpr, reg *Registry) (Shape, error) {
	var inner []TypeExpr
	nullSeen := false
	for _, m := range e.members {
		if _, ok := m.(nullExpr); ok {
			nullSeen = true
			continue
		}
		inner = append(inner, m)
	}
	if !nullSeen || len(inner) != 1 {
		return nil, &UnsupportedTypeError{
			Decl:   e.String(),
			Reason: "only unions of the form {T, null} are supported",
		}
	}
	s, err := resolveIn(inner[0], reg)
	if err != nil {
		return nil, err
	}
	return OptionalShape{Inner: s}, nil
}
