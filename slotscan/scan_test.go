package slotscan

import (
	"bytes"
	"testing"

	"github.com/aledsdavies/ecjp/ecjperr"
	"github.com/aledsdavies/ecjp/lex"

	"github.com/google/go-cmp/cmp"
)

func TestLoadRecordsTopLevelKeysByDefault(t *testing.T) {
	src := []byte(`{"a":1,"b":"two","c":[1,2,3],"d":{"e":5}}`)

	// level=0 admits a root object's own direct entries (spec.md §8
	// scenario 3); it only excludes keys nested inside a deeper object.
	// The elements of "c" sit at the same object depth, so they are
	// emitted too, as slots with no key anchor.
	list, res, err := Load(src, lex.DefaultLimits(), 0)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if res.Struct != lex.StructObject {
		t.Fatalf("Struct = %v, want StructObject", res.Struct)
	}

	type keyShape struct {
		Key  string
		Type lex.ValueType
	}
	var got []keyShape
	for _, tok := range list {
		key := "(no key)"
		if tok.HasKey() {
			key = string(src[tok.Start : tok.Start+tok.Length])
		}
		got = append(got, keyShape{Key: key, Type: tok.Type})
	}
	want := []keyShape{
		{"a", lex.Number},
		{"b", lex.String},
		{"c", lex.Array},
		{"(no key)", lex.Number},
		{"(no key)", lex.Number},
		{"(no key)", lex.Number},
		{"d", lex.Object},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadGatesByLevel(t *testing.T) {
	// Matches spec.md §8 scenario 3 verbatim.
	src := []byte(`{"a":{"b":1}}`)

	list, _, err := Load(src, lex.DefaultLimits(), 0)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("level 0: got %d tokens, want 1 (only \"a\")", len(list))
	}

	list, _, err = Load(src, lex.DefaultLimits(), 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("level 1: got %d tokens, want 2 (\"a\" and nested \"b\")", len(list))
	}
}

func TestLoadRecordsArraySlotsWithNoKeyAnchor(t *testing.T) {
	src := []byte(`[1,2,3]`)

	list, _, err := Load(src, lex.DefaultLimits(), 0)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d tokens, want 3", len(list))
	}
	for _, tok := range list {
		if tok.HasKey() {
			t.Errorf("array slot token = %+v, want HasKey() false (no key anchor)", tok)
		}
	}
}

func TestLoadDistinguishesEmptyStringKeyFromNoKeyAnchor(t *testing.T) {
	src := []byte(`{"":1}`)

	list, _, err := Load(src, lex.DefaultLimits(), 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d tokens, want 1", len(list))
	}
	tok := list[0]
	if !tok.HasKey() {
		t.Fatalf("token = %+v, want HasKey() true for a legitimate empty-string key", tok)
	}
	if tok.Length != 0 {
		t.Errorf("token.Length = %d, want 0 for an empty-string key", tok.Length)
	}
	if got := string(src[tok.Start : tok.Start+tok.Length]); got != "" {
		t.Errorf("key text = %q, want empty string", got)
	}
}

func TestLoadSurfacesSyntaxErrors(t *testing.T) {
	_, _, err := Load([]byte(`{"a":1,}`), lex.DefaultLimits(), 0)
	if ecjperr.CodeOf(err) != ecjperr.SyntaxError {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
}

func TestCheckSyntaxEmitsNothing(t *testing.T) {
	res, err := CheckSyntax([]byte(`{"a":[1,2,{"b":3}]}`), lex.DefaultLimits())
	if err != nil {
		t.Fatalf("CheckSyntax error: %v", err)
	}
	if res.NumElements != 0 {
		t.Errorf("NumElements = %d, want 0 for a NopSink scan", res.NumElements)
	}
}

func TestGetKeyFindsNextMatchingKey(t *testing.T) {
	src := []byte(`{"a":1,"a":2,"b":3}`)
	list, _, err := Load(src, lex.DefaultLimits(), 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	tok, n, err := GetKey(src, list, []byte("a"), -1, nil)
	if err != nil {
		t.Fatalf("GetKey error: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0 when out is nil", n)
	}

	tok2, _, err := GetKey(src, list, []byte("a"), tok.Start, nil)
	if err != nil {
		t.Fatalf("GetKey (second match) error: %v", err)
	}
	if tok2.Start <= tok.Start {
		t.Errorf("second match Start %d did not advance past first match Start %d", tok2.Start, tok.Start)
	}

	if _, _, err := GetKey(src, list, []byte("a"), tok2.Start, nil); ecjperr.CodeOf(err) != ecjperr.NoMoreKey {
		t.Errorf("expected NoMoreKey after exhausting matches, got %v", err)
	}
}

func TestGetKeyMatchesEmptyStringKey(t *testing.T) {
	src := []byte(`{"":1,"a":2}`)
	list, _, err := Load(src, lex.DefaultLimits(), 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	tok, n, err := GetKey(src, list, []byte(""), -1, nil)
	if err != nil {
		t.Fatalf("GetKey error: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0 when out is nil", n)
	}
	if tok.Type != lex.Number || tok.Length != 0 {
		t.Errorf("token = %+v, want the empty-string key's Number token", tok)
	}
}

func TestGetKeyCopiesKeyBytesAndReportsOverflow(t *testing.T) {
	src := []byte(`{"name":1}`)
	list, _, err := Load(src, lex.DefaultLimits(), 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	out := make([]byte, 16)
	tok, n, err := GetKey(src, list, nil, -1, out)
	if err != nil {
		t.Fatalf("GetKey error: %v", err)
	}
	if !bytes.Equal(out[:n], []byte("name")) {
		t.Errorf("copied key = %q, want %q", out[:n], "name")
	}
	if tok.Type != lex.Number {
		t.Errorf("token type = %v, want Number", tok.Type)
	}

	small := make([]byte, 2)
	_, n, err = GetKey(src, list, nil, -1, small)
	if ecjperr.CodeOf(err) != ecjperr.NoSpaceInBufferValue {
		t.Fatalf("expected NoSpaceInBufferValue, got %v", err)
	}
	if n != 2 {
		t.Errorf("truncated n = %d, want 2", n)
	}
}

func TestPrintKeysWritesOneLinePerToken(t *testing.T) {
	src := []byte(`{"a":1,"b":2}`)
	list, _, err := Load(src, lex.DefaultLimits(), 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	var buf bytes.Buffer
	if err := PrintKeys(&buf, src, list); err != nil {
		t.Fatalf("PrintKeys error: %v", err)
	}
	if got := buf.String(); !bytes.Contains([]byte(got), []byte(`key="a"`)) {
		t.Errorf("output missing key=\"a\": %q", got)
	}
}
