package agents

import (
	"context"

	"github.com/fishbait/customs"
	js "github.com/fishbait/customs/jsonschema"
)

// String accepts JSON strings (and named Go string types).
func String() customs.Agent[string] { return newAgent[string](stringShape{}) }

// Number accepts finite JSON numbers: json.Number, float64 and the Go integer
// and float kinds.
func Number() customs.Agent[float64] { return newAgent[float64](numberShape{}) }

// Bool accepts JSON booleans.
func Bool() customs.Agent[bool] { return newAgent[bool](boolShape{}) }

// Null accepts exactly JSON null. It stamps nil.
func Null() customs.Agent[any] { return newAgent[any](nullShape{}) }

type stringShape struct{}

func (stringShape) Rewrite(v any) any { return v }
func (stringShape) Verify(v any) bool {
	_, ok := customs.AsString(v)
	return ok
}
func (s stringShape) Explain(_ context.Context, v any) customs.Issues {
	if s.Verify(v) {
		return nil
	}
	return customs.Issues{customs.MismatchAt("/", "string", v)}
}
func (stringShape) JSONSchema() (*js.Schema, error) { return js.Of("string"), nil }
func (stringShape) Project(v any) string {
	s, _ := customs.AsString(v)
	return s
}

type numberShape struct{}

func (numberShape) Rewrite(v any) any { return v }
func (numberShape) Verify(v any) bool {
	_, ok := customs.AsNumber(v)
	return ok
}
func (n numberShape) Explain(_ context.Context, v any) customs.Issues {
	if n.Verify(v) {
		return nil
	}
	return customs.Issues{customs.MismatchAt("/", "number", v)}
}
func (numberShape) JSONSchema() (*js.Schema, error) { return js.Of("number"), nil }
func (numberShape) Project(v any) float64 {
	f, _ := customs.AsNumber(v)
	return f
}

type boolShape struct{}

func (boolShape) Rewrite(v any) any { return v }
func (boolShape) Verify(v any) bool {
	_, ok := customs.AsBool(v)
	return ok
}
func (b boolShape) Explain(_ context.Context, v any) customs.Issues {
	if b.Verify(v) {
		return nil
	}
	return customs.Issues{customs.MismatchAt("/", "boolean", v)}
}
func (boolShape) JSONSchema() (*js.Schema, error) { return js.Of("boolean"), nil }
func (boolShape) Project(v any) bool {
	b, _ := customs.AsBool(v)
	return b
}

type nullShape struct{}

func (nullShape) Rewrite(v any) any { return v }
func (nullShape) Verify(v any) bool { return customs.IsNull(v) }
func (nullShape) Explain(_ context.Context, v any) customs.Issues {
	if customs.IsNull(v) {
		return nil
	}
	return customs.Issues{customs.MismatchAt("/", "null", v)}
}
func (nullShape) JSONSchema() (*js.Schema, error) { return js.Of("null"), nil }
func (nullShape) Project(any) any                { return nil }
