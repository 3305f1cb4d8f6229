package agents_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/fishbait/customs"
	a "github.com/fishbait/customs/agents"
)

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func TestConversion_Gating(t *testing.T) {
	ctx := context.Background()
	conv := a.Conversion(a.Number(), formatNumber, a.String())

	v, err := conv.Decode(ctx, 5.0)
	if err != nil || v != "5" {
		t.Fatalf("5 should convert to \"5\", got v=%q err=%v", v, err)
	}

	// the raw value is checked against the input agent before conversion:
	// decoding is not idempotent for this conversion
	_, err = conv.Decode(ctx, "5")
	iss, ok := customs.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != customs.CodeConversionInput {
		t.Fatalf("expected conversion_input, got %v", err)
	}
	if iss[0].Params["got"] != "string" {
		t.Fatalf("unexpected params %v", iss[0].Params)
	}
}

func TestConversion_ConvertNeverRunsOnBadInput(t *testing.T) {
	calls := 0
	conv := a.Conversion(a.Number(), func(f float64) string {
		calls++
		return formatNumber(f)
	}, a.String())
	_, _ = conv.Decode(context.Background(), true)
	if calls != 0 {
		t.Fatalf("convert must not run when the input agent rejects, ran %d times", calls)
	}
}

func TestConversion_OutputChecked(t *testing.T) {
	conv := a.Conversion(a.Number(), func(float64) string { return "nope" }, a.Enum("yes"))
	_, err := conv.Decode(context.Background(), 1.0)
	iss, ok := customs.AsIssues(err)
	if !ok || iss[0].Code != customs.CodeInvalidEnum {
		t.Fatalf("converted value must satisfy the output agent, got %v", err)
	}
}

func TestConversion_RewriteAndVerify(t *testing.T) {
	conv := a.Conversion(a.Number(), formatNumber, a.String())
	if got := conv.Rewrite(7.0); got != "7" {
		t.Fatalf("rewrite should convert conforming input, got %#v", got)
	}
	if got := conv.Rewrite(true); got != true {
		t.Fatalf("rewrite should leave other values alone, got %#v", got)
	}
	// verify is the output agent's
	if !conv.Verify("7") || conv.Verify(7.0) {
		t.Fatalf("verify should delegate to the output agent")
	}
}

func TestConversion_InsideArrayIsIdempotent(t *testing.T) {
	ctx := context.Background()
	arr := a.Array(a.Conversion(a.Number(), formatNumber, a.String()))
	first, err := arr.Decode(ctx, []any{1.0, 2.5})
	if err != nil || len(first) != 2 || first[0] != "1" || first[1] != "2.5" {
		t.Fatalf("decode: v=%v err=%v", first, err)
	}
	second, err := arr.Decode(ctx, first)
	if err != nil || second[1] != "2.5" {
		t.Fatalf("container decode should be idempotent: v=%v err=%v", second, err)
	}
	_, err = arr.Decode(ctx, []any{1.0, true})
	iss, _ := customs.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/1" || iss[0].Code != customs.CodeConversionInput {
		t.Fatalf("expected conversion_input at /1, got %v", iss)
	}
}

func TestConversion_JSONSchemaIsInputSide(t *testing.T) {
	conv := a.Conversion(a.Number(), formatNumber, a.String())
	sch, err := conv.JSONSchema()
	if err != nil || sch.Type != "number" {
		t.Fatalf("expected number schema, got %+v err=%v", sch, err)
	}
}
