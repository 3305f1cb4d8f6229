package agents_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fishbait/customs"
	a "github.com/fishbait/customs/agents"
)

type color string

const (
	red   color = "Red"
	green color = "Green"
)

func TestEnum_Closed(t *testing.T) {
	ctx := context.Background()
	e := a.Enum(red, green)

	v, err := e.Decode(ctx, "Red")
	if err != nil || v != red {
		t.Fatalf("decode: v=%v err=%v", v, err)
	}

	_, err = e.Decode(ctx, "Blue")
	iss, ok := customs.AsIssues(err)
	if !ok || iss[0].Code != customs.CodeInvalidEnum || iss[0].Hint != "one of: Red, Green" {
		t.Fatalf("expected invalid_enum with members hint, got %v", err)
	}

	// no case folding, no coercion from other kinds
	for _, bad := range []any{"red", nil, 0, json.Number("0"), true} {
		if e.Verify(bad) {
			t.Fatalf("%#v must not verify", bad)
		}
	}
	_, err = e.Decode(ctx, 1)
	iss, _ = customs.AsIssues(err)
	if iss[0].Code != customs.CodeInvalidType {
		t.Fatalf("non-strings should be invalid_type, got %v", iss)
	}
}

func TestEnum_AcceptsStampedValue(t *testing.T) {
	e := a.Enum(red, green)
	v, err := e.Decode(context.Background(), green)
	if err != nil || v != green {
		t.Fatalf("decode of stamped value: v=%v err=%v", v, err)
	}
}

func TestEnumMap(t *testing.T) {
	e := a.EnumMap(map[string]color{"GREEN": green, "RED": red})
	if !e.Verify("Green") || e.Verify("GREEN") {
		t.Fatalf("only values are members")
	}
	sch, err := e.JSONSchema()
	if err != nil || sch.Type != "string" || len(sch.Enum) != 2 || sch.Enum[0] != "Green" {
		t.Fatalf("unexpected schema %+v err=%v", sch, err)
	}
}
