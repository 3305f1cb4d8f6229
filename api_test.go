package customs_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fishbait/customs"
	a "github.com/fishbait/customs/agents"
)

func TestDecode_SafeDecode_Is(t *testing.T) {
	ctx := context.Background()
	s := a.String()

	v, err := customs.Decode(ctx, s, "x")
	if err != nil || v != "x" {
		t.Fatalf("decode: v=%v err=%v", v, err)
	}
	if _, ok := customs.SafeDecode(ctx, s, 1.0); ok {
		t.Fatalf("SafeDecode should report failure")
	}
	if !customs.Is(s, "y") || customs.Is(s, nil) {
		t.Fatalf("Is should be the soft check")
	}
	if customs.Is[string](nil, "y") {
		t.Fatalf("nil agent accepts nothing")
	}
	if _, err := customs.Decode[string](ctx, nil, "x"); err == nil {
		t.Fatalf("nil agent should fail")
	}
}

func TestDecode_Idempotent(t *testing.T) {
	ctx := context.Background()
	state := a.Unsnake(a.Object(a.Shape{
		"playerNames": a.Array(a.String()),
		"lastAction":  a.Array(a.Nullable(a.Object(a.Shape{"action": a.Enum("Fold", "Call"), "size": a.Number()}))),
	}))
	first, err := customs.DecodeFrom(ctx, state, customs.JSONBytes([]byte(
		`{"player_names":["a","b"],"last_action":[null,{"action":"Call","size":20}]}`)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	second, err := customs.Decode(ctx, state, first)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}
	names := second["playerNames"].([]string)
	acts := second["lastAction"].([]*map[string]any)
	if len(names) != 2 || acts[0] != nil || (*acts[1])["action"] != "Call" || (*acts[1])["size"] != 20.0 {
		t.Fatalf("unexpected second stamp %#v", second)
	}
}

func TestDecodeFrom_FailFast(t *testing.T) {
	obj := a.Object(a.Shape{"a": a.String(), "b": a.String()})
	src := customs.JSONBytes([]byte(`{"a":1,"b":2}`))
	_, err := customs.DecodeFrom(context.Background(), obj, src, customs.ParseOpt{FailFast: true})
	iss, _ := customs.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/a" {
		t.Fatalf("fail-fast should report only /a, got %v", iss)
	}
	if !customs.IsFailFast(customs.WithFailFast(context.Background(), true)) || customs.IsFailFast(nil) {
		t.Fatalf("IsFailFast mismatch")
	}
}

func TestDecodeFrom_NumberModes(t *testing.T) {
	ctx := context.Background()
	num := a.Union(a.Null(), a.Number())
	v, err := customs.DecodeFrom(ctx, num, customs.JSONBytes([]byte(`12345678901234567890`)))
	if err != nil || v != 12345678901234567890.0 {
		t.Fatalf("json.Number mode: v=%v err=%v", v, err)
	}
	v, err = customs.DecodeFrom(ctx, num, customs.WithNumberMode(customs.JSONBytes([]byte(`1.5`)), customs.NumberFloat64))
	if err != nil || v != 1.5 {
		t.Fatalf("float64 mode: v=%v err=%v", v, err)
	}
}

func TestStamp_FallsBackToMismatch(t *testing.T) {
	ag := a.Array(a.String())
	_, err := customs.Stamp(context.Background(), ag, 3.0)
	if err == nil || !strings.Contains(err.Error(), "invalid_type at /") {
		t.Fatalf("expected invalid_type at /, got %v", err)
	}
}

func TestReadValue_EmptyArrayIsNotNull(t *testing.T) {
	v, err := customs.ReadValue(customs.JSONBytes([]byte(`{"a":[]}`)), customs.ParseOpt{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	arr, ok := v.(map[string]any)["a"].([]any)
	if !ok || arr == nil || len(arr) != 0 {
		t.Fatalf("empty array should be a non-nil []any, got %#v", v)
	}
}
