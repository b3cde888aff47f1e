package codec

import (
	"reflect"
	"testing"
)

func codecs() map[string]Codec {
	return map[string]Codec{
		"json":     JSON{},
		"jsoniter": JSONIter{},
	}
}

func TestEncodeDecodeGenericValues(t *testing.T) {
	in := map[string]any{
		"s":    "v",
		"n":    1.5,
		"b":    true,
		"null": nil,
		"seq":  []any{1.0, "two"},
	}
	for name, c := range codecs() {
		b, err := c.Encode(in)
		if err != nil {
			t.Fatalf("%s encode: %v", name, err)
		}
		out, err := c.Decode(b)
		if err != nil {
			t.Fatalf("%s decode: %v", name, err)
		}
		if !reflect.DeepEqual(out, map[string]any(in)) {
			t.Fatalf("%s: got %v want %v", name, out, in)
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for name, c := range codecs() {
		if _, err := c.Decode([]byte("{")); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLimitGuardsDecode(t *testing.T) {
	c := Limit{Inner: JSON{}, MaxDecode: 4}

	if _, err := c.Decode([]byte(`true`)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode([]byte(`"too long"`)); err == nil {
		t.Fatal("expected payload too large error")
	}

	// Encode is never limited
	if _, err := c.Encode("a much longer payload than four bytes"); err != nil {
		t.Fatal(err)
	}
}
