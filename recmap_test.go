package recmap

// Shared fixtures: a small domain with primitives, optional fields,
// collections and one level of nesting.

type inner struct {
	Value string
}

type outer struct {
	Inner *inner
}

type user struct {
	ID     string
	Age    int64
	Score  float64
	Active bool
	Nick   *string
	Tags   []int64
	Attrs  map[string]string
}

var innerType = NewType[inner]("Inner").
	Field("value", String(),
		func(v *inner) any { return v.Value },
		func(v *inner, x any) { v.Value = x.(string) },
	).
	MustBuild()

var outerType = NewType[outer]("Outer").
	Field("inner", Optional(Nested(innerType)),
		func(v *outer) any {
			if v.Inner == nil {
				return nil
			}
			return v.Inner
		},
		func(v *outer, x any) {
			if x == nil {
				v.Inner = nil
				return
			}
			v.Inner = x.(*inner)
		},
	).
	MustBuild()

func userType() *Type[user] {
	return NewType[user]("User").
		Field("id", String(),
			func(u *user) any { return u.ID },
			func(u *user, x any) { u.ID = x.(string) },
		).
		Field("age", Int(),
			func(u *user) any { return u.Age },
			func(u *user, x any) { u.Age = x.(int64) },
			WithContract(func(v any) bool { return v.(int64) >= 0 }),
		).
		Field("score", Float(),
			func(u *user) any { return u.Score },
			func(u *user, x any) { u.Score = x.(float64) },
		).
		Field("active", Bool(),
			func(u *user) any { return u.Active },
			func(u *user, x any) { u.Active = x.(bool) },
			WithDefault(true),
		).
		Field("nick", Optional(String()),
			func(u *user) any {
				if u.Nick == nil {
					return nil
				}
				return *u.Nick
			},
			func(u *user, x any) {
				if x == nil {
					u.Nick = nil
					return
				}
				s := x.(string)
				u.Nick = &s
			},
		).
		Field("tags", Sequence(Int()),
			func(u *user) any { return Seq(u.Tags) },
			func(u *user, x any) { u.Tags, _ = SeqOf[int64](x) },
			WithDefaultFunc(func() any { return []any{} }),
		).
		Field("attrs", Optional(Mapping(String())),
			func(u *user) any { return Map(u.Attrs) },
			func(u *user, x any) { u.Attrs, _ = MapOf[string](x) },
		).
		MustBuild()
}

func strptr(s string) *string { return &s }
