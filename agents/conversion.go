package agents

import (
	"context"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/i18n"
	js "github.com/fishbait/customs/jsonschema"
)

// Conversion turns values stamped by in into values checked by out.
//
// Rewrite converts a value that conforms to in after in's rewrite and leaves
// anything else alone; Verify is out's. Decode is stricter than the
// Rewrite/Verify pair: the raw value must satisfy in before convert runs
// (conversion_input otherwise), and the converted value must satisfy out. As a
// result Decode is not idempotent when in and out accept disjoint values:
// a value already in the out form fails the in check.
func Conversion[I, O any](in customs.Agent[I], convert func(I) O, out customs.Agent[O]) customs.Agent[O] {
	return conversion[I, O]{in: in, convert: convert, out: out}
}

type conversion[I, O any] struct {
	in      customs.Agent[I]
	convert func(I) O
	out     customs.Agent[O]
}

func (c conversion[I, O]) Rewrite(v any) any {
	r := c.in.Rewrite(v)
	if !c.in.Verify(r) {
		return v
	}
	return c.convert(c.in.Project(r))
}

func (c conversion[I, O]) Verify(v any) bool { return c.out.Verify(v) }

func (c conversion[I, O]) Explain(ctx context.Context, v any) customs.Issues {
	if c.out.Verify(v) {
		return nil
	}
	o, converted := v.(O)
	if !converted {
		if !c.in.Verify(v) {
			return c.inputIssues(ctx, v)
		}
		o = c.convert(c.in.Project(v))
	}
	if iss := c.out.Explain(ctx, o); len(iss) > 0 {
		return iss
	}
	return customs.Issues{customs.MismatchAt("/", "", v)}
}

// JSONSchema describes the input side, which is what appears on the wire.
func (c conversion[I, O]) JSONSchema() (*js.Schema, error) { return c.in.JSONSchema() }

func (c conversion[I, O]) Project(v any) O {
	if o, ok := v.(O); ok {
		return o
	}
	return c.out.Project(v)
}

func (c conversion[I, O]) Decode(ctx context.Context, v any) (O, error) {
	var zero O
	if !c.in.Verify(v) {
		return zero, c.inputIssues(ctx, v)
	}
	o := c.convert(c.in.Project(v))
	if !c.out.Verify(o) {
		iss := c.out.Explain(ctx, o)
		if len(iss) == 0 {
			iss = customs.Issues{customs.MismatchAt("/", "", o)}
		}
		return zero, iss
	}
	return o, nil
}

func (c conversion[I, O]) CanDecode(v any) bool { return c.Verify(c.Rewrite(v)) }
func (c conversion[I, O]) projectAny(v any) any  { return c.Project(v) }

func (c conversion[I, O]) inputIssues(ctx context.Context, v any) customs.Issues {
	it := customs.Issue{
		Path:    "/",
		Code:    customs.CodeConversionInput,
		Message: i18n.T(customs.CodeConversionInput, nil),
		Params:  map[string]any{"got": customs.KindOf(v)},
	}
	if cause := c.in.Explain(ctx, v); len(cause) > 0 {
		it.Cause = cause
		it.Hint = cause[0].Message
	}
	return customs.Issues{it}
}
