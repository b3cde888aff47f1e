package recmap

import (
	"strings"
	"testing"
)

func TestBuilderFieldOrderPreserved(t *testing.T) {
	ut := userType()
	want := []string{"id", "age", "score", "active", "nick", "tags", "attrs"}
	got := ut.FieldNames()
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestBuilderRejectsDuplicateField(t *testing.T) {
	_, err := NewType[inner]("Dup").
		Field("value", String(),
			func(v *inner) any { return v.Value },
			func(v *inner, x any) { v.Value = x.(string) },
		).
		Field("value", String(),
			func(v *inner) any { return v.Value },
			func(v *inner, x any) { v.Value = x.(string) },
		).
		Build()
	if err == nil || !strings.Contains(err.Error(), "duplicate field") {
		t.Fatalf("want duplicate field error, got %v", err)
	}
}

func TestBuilderRejectsEncodeWithoutDecode(t *testing.T) {
	_, err := NewType[inner]("Half").
		Field("value", String(),
			func(v *inner) any { return v.Value },
			func(v *inner, x any) { v.Value = x.(string) },
			WithEncode(func(v any) (any, error) { return v, nil }),
		).
		Build()
	if err == nil || !strings.Contains(err.Error(), "encode declared without decode") {
		t.Fatalf("want encode/decode pairing error, got %v", err)
	}
}

func TestBuilderRejectsUnresolvableField(t *testing.T) {
	_, err := NewType[inner]("Bad").
		Field("value", Union(String(), Int()),
			func(v *inner) any { return v.Value },
			func(v *inner, x any) { v.Value = x.(string) },
		).
		Build()
	if _, ok := err.(*UnsupportedTypeError); !ok {
		t.Fatalf("want *UnsupportedTypeError, got %v", err)
	}
}

func TestMustBuildPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewType[inner]("Bad").
		Field("value", Null(),
			func(v *inner) any { return v.Value },
			func(v *inner, x any) { v.Value = x.(string) },
		).
		MustBuild()
}

func TestRegistryRejectsDuplicateName(t *testing.T) {
	reg := NewRegistry(Options{})
	build := func() error {
		_, err := NewType[inner]("Inner").
			Registry(reg).
			Field("value", String(),
				func(v *inner) any { return v.Value },
				func(v *inner, x any) { v.Value = x.(string) },
			).
			Build()
		return err
	}
	if err := build(); err != nil {
		t.Fatal(err)
	}
	if err := build(); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if _, ok := reg.Lookup("Inner"); !ok {
		t.Fatal("registered type not found")
	}
	if names := reg.Names(); len(names) != 1 || names[0] != "Inner" {
		t.Fatalf("Names() = %v", names)
	}
}
