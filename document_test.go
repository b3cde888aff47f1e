package recmap

import (
	"encoding/json"
	"testing"
)

func TestDocPreservesInsertionOrder(t *testing.T) {
	d := NewDoc()
	d.Set("z", 1)
	d.Set("a", 2)
	d.Set("m", 3)

	want := []string{"z", "a", "m"}
	got := d.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"z":1,"a":2,"m":3}` {
		t.Fatalf("got %s", b)
	}
}

func TestDocOverwriteKeepsPosition(t *testing.T) {
	d := NewDoc()
	d.Set("a", 1)
	d.Set("b", 2)
	d.Set("a", 3)

	if d.Len() != 2 {
		t.Fatalf("len = %d, want 2", d.Len())
	}
	if v, ok := d.Get("a"); !ok || v != 3 {
		t.Fatalf("a = %v, %v", v, ok)
	}
	b, _ := json.Marshal(d)
	if string(b) != `{"a":3,"b":2}` {
		t.Fatalf("got %s", b)
	}
}

func TestDocMarshalsNestedDocs(t *testing.T) {
	in := NewDoc()
	in.Set("x", nil)
	d := NewDoc()
	d.Set("inner", in)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"inner":{"x":null}}` {
		t.Fatalf("got %s", b)
	}
}

func TestAsMappingAdaptsBothForms(t *testing.T) {
	d := NewDoc()
	d.Set("k", "v")

	keys, get, ok := asMapping(d)
	if !ok || len(keys) != 1 || keys[0] != "k" {
		t.Fatalf("doc view: keys=%v ok=%v", keys, ok)
	}
	if v, ok := get("k"); !ok || v != "v" {
		t.Fatalf("doc get: %v %v", v, ok)
	}

	keys, get, ok = asMapping(map[string]any{"b": 2, "a": 1})
	if !ok || len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("map view: keys=%v ok=%v (want sorted)", keys, ok)
	}
	if v, _ := get("b"); v != 2 {
		t.Fatalf("map get b = %v", v)
	}

	if _, _, ok := asMapping([]any{}); ok {
		t.Fatal("sequence should not adapt to mapping")
	}
}
