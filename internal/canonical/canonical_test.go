package canonical

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMarshalOrdersAndDropsNulls(t *testing.T) {
	input := map[string]any{
		"b": "value",
		"a": 1,
		"c": nil,
		"d": map[string]any{
			"z": nil,
			"y": true,
		},
	}

	got, err := Marshal(input)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"a":1,"b":"value","d":{"y":true}}`
	if string(got) != want {
		t.Fatalf("unexpected canonical json:\n%s\nwant:\n%s", got, want)
	}
}

func TestFromJSONFieldValue(t *testing.T) {
	got, err := FromJSON([]byte("{ \"field\" : \"value\" }\n"))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if string(got) != `{"field":"value"}` {
		t.Fatalf("unexpected canonical json: %s", got)
	}
}

func TestFromJSONErrors(t *testing.T) {
	for _, in := range []string{`{"a":1} {"b":2}`, `{"a":1}}`, `[1]]`, `{"field":"value"}]`, `1 x`} {
		if _, err := FromJSON([]byte(in)); !errors.Is(err, ErrTrailingData) {
			t.Fatalf("%s: expected ErrTrailingData, got %v", in, err)
		}
	}
	if _, err := FromJSON([]byte("{\"a\":1}\n\t ")); err != nil {
		t.Fatalf("trailing whitespace must be accepted: %v", err)
	}
	if _, err := FromJSON([]byte(`{"a":1.5}`)); !errors.Is(err, ErrFloatNotAllowed) {
		t.Fatalf("expected ErrFloatNotAllowed, got %v", err)
	}
	if _, err := FromJSON([]byte(`{"a":`)); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestMarshalRejectsFloat(t *testing.T) {
	if _, err := Marshal(1.25); !errors.Is(err, ErrFloatNotAllowed) {
		t.Fatalf("expected ErrFloatNotAllowed, got %v", err)
	}
	if _, err := Marshal(json.Number("1e3")); !errors.Is(err, ErrFloatNotAllowed) {
		t.Fatalf("expected ErrFloatNotAllowed, got %v", err)
	}

	got, err := Marshal(json.Number("42"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != "42" {
		t.Fatalf("unexpected canonical json: %s", got)
	}
}

func TestMarshalNormalizesNFC(t *testing.T) {
	got, err := Marshal(map[string]any{"text": "e\u0301"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := "{\"text\":\"\u00e9\"}"
	if string(got) != want {
		t.Fatalf("unexpected canonical json:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalKeyErrors(t *testing.T) {
	_, err := Marshal(map[string]any{"e\u0301": 1, "\u00e9": 2})
	if !errors.Is(err, ErrKeyCollision) {
		t.Fatalf("expected ErrKeyCollision, got %v", err)
	}

	_, err = Marshal(map[int]any{1: "a"})
	if !errors.Is(err, ErrNonStringMapKey) {
		t.Fatalf("expected ErrNonStringMapKey, got %v", err)
	}

	type payload struct{ A int }
	_, err = Marshal(payload{A: 1})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestMarshalArrays(t *testing.T) {
	got, err := Marshal([]any{1, nil, "a", false})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `[1,null,"a",false]` {
		t.Fatalf("unexpected canonical json: %s", got)
	}

	var nilSlice []any
	got, err = Marshal(nilSlice)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != "null" {
		t.Fatalf("unexpected canonical json: %s", got)
	}
}
