//go:build !ecjp_noitemlist

package itemscan

import (
	"testing"

	"github.com/aledsdavies/ecjp/ecjperr"
	"github.com/aledsdavies/ecjp/lex"
)

func TestLoadCapturesArrayItemsVerbatim(t *testing.T) {
	src := []byte(`[1, "two", true, null, {"a":1}, [1,2]]`)
	list, res, err := Load(src, lex.DefaultLimits())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if res.Struct != lex.StructArray {
		t.Fatalf("Struct = %v, want StructArray", res.Struct)
	}

	want := []struct {
		typ  lex.ValueType
		text string
	}{
		{lex.Number, "1"},
		{lex.String, `"two"`},
		{lex.Bool, "true"},
		{lex.Null, "null"},
		{lex.Object, `{"a":1}`},
		{lex.Array, "[1,2]"},
	}
	if len(list) != len(want) {
		t.Fatalf("got %d items, want %d", len(list), len(want))
	}
	for i, w := range want {
		if list[i].Type != w.typ {
			t.Errorf("item[%d].Type = %v, want %v", i, list[i].Type, w.typ)
		}
		if string(list[i].Bytes) != w.text {
			t.Errorf("item[%d].Bytes = %q, want %q", i, list[i].Bytes, w.text)
		}
	}
}

func TestLoadCapturesObjectItemsAsKeyValuePairs(t *testing.T) {
	src := []byte(`{"a":1,"b":{"c":2},"d":[1,2]}`)
	list, res, err := Load(src, lex.DefaultLimits())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if res.Struct != lex.StructObject {
		t.Fatalf("Struct = %v, want StructObject", res.Struct)
	}

	want := []string{`"a":1`, `"b":{"c":2}`, `"d":[1,2]`}
	if len(list) != len(want) {
		t.Fatalf("got %d items, want %d", len(list), len(want))
	}
	for i, w := range want {
		if list[i].Type != lex.KeyValuePair {
			t.Errorf("item[%d].Type = %v, want KeyValuePair", i, list[i].Type)
		}
		if string(list[i].Bytes) != w {
			t.Errorf("item[%d].Bytes = %q, want %q", i, list[i].Bytes, w)
		}
	}
}

func TestLoadIgnoresNestedElements(t *testing.T) {
	src := []byte(`[[1,2,3],[4,5]]`)
	list, _, err := Load(src, lex.DefaultLimits())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d items, want 2 (only top-level elements)", len(list))
	}
}

func TestReadElementReportsOutOfBounds(t *testing.T) {
	list, _, err := Load([]byte(`[1,2]`), lex.DefaultLimits())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, err := ReadElement(list, 5); ecjperr.CodeOf(err) != ecjperr.IndexOutOfBounds {
		t.Fatalf("expected IndexOutOfBounds, got %v", err)
	}
	item, err := ReadElement(list, 1)
	if err != nil {
		t.Fatalf("ReadElement error: %v", err)
	}
	if string(item.Bytes) != "2" {
		t.Errorf("item.Bytes = %q, want %q", item.Bytes, "2")
	}
}

func TestLoadSurfacesSyntaxErrors(t *testing.T) {
	_, _, err := Load([]byte(`[1,2,]`), lex.DefaultLimits())
	if ecjperr.CodeOf(err) != ecjperr.SyntaxError {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
}
