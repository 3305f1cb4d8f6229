package customs_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/fishbait/customs"
)

type suit string

func TestAsString(t *testing.T) {
	s := suit("s")
	for _, v := range []any{"x", suit("h"), &s} {
		if _, ok := customs.AsString(v); !ok {
			t.Fatalf("%#v should view as string", v)
		}
	}
	for _, v := range []any{nil, json.Number("1"), 1, (*suit)(nil), []byte("x")} {
		if _, ok := customs.AsString(v); ok {
			t.Fatalf("%#v should not view as string", v)
		}
	}
}

func TestAsNumber(t *testing.T) {
	cases := map[any]float64{
		json.Number("1.5"): 1.5,
		2:                  2,
		int8(-3):           -3,
		uint16(4):          4,
		float32(0.5):       0.5,
	}
	for in, want := range cases {
		got, ok := customs.AsNumber(in)
		if !ok || got != want {
			t.Fatalf("%#v: want %v, got %v ok=%v", in, want, got, ok)
		}
	}
	for _, v := range []any{math.NaN(), json.Number("NaN"), json.Number("1e"), "1", true, nil} {
		if _, ok := customs.AsNumber(v); ok {
			t.Fatalf("%#v should not view as number", v)
		}
	}
}

func TestAsNumber_OutOfRangeLiteral(t *testing.T) {
	for lit, sign := range map[string]int{"1e400": 1, "-1e400": -1} {
		f, ok := customs.AsNumber(json.Number(lit))
		if !ok || !math.IsInf(f, sign) {
			t.Fatalf("%s: want Inf(%d), got %v ok=%v", lit, sign, f, ok)
		}
	}
	if f, ok := customs.AsNumber(math.Inf(-1)); !ok || !math.IsInf(f, -1) {
		t.Fatalf("-Inf should view as a number")
	}
}

func TestAsSliceAndMap(t *testing.T) {
	src := []any{1}
	got, ok := customs.AsSlice(src)
	if !ok || &got[0] != &src[0] {
		t.Fatalf("[]any should be returned as-is")
	}
	typed, ok := customs.AsSlice([]string{"a", "b"})
	if !ok || len(typed) != 2 || typed[1] != "b" {
		t.Fatalf("typed slice view failed: %v", typed)
	}
	if _, ok := customs.AsSlice("ab"); ok {
		t.Fatalf("strings are not sequences")
	}

	m, ok := customs.AsMap(map[string]int{"a": 1})
	if !ok || m["a"] != 1 {
		t.Fatalf("typed map view failed: %v", m)
	}
	if _, ok := customs.AsMap(map[int]any{1: 1}); ok {
		t.Fatalf("non-string keys are not objects")
	}
	if _, ok := customs.AsMap(nil); ok {
		t.Fatalf("null is not an object")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{nil, "null"},
		{true, "boolean"},
		{json.Number("1"), "number"},
		{3.5, "number"},
		{"s", "string"},
		{suit("s"), "string"},
		{[]any{}, "array"},
		{map[string]any{}, "object"},
		{struct{}{}, "struct {}"},
	}
	for _, tc := range cases {
		if got := customs.KindOf(tc.v); got != tc.want {
			t.Fatalf("KindOf(%#v): want %s, got %s", tc.v, tc.want, got)
		}
	}
}
