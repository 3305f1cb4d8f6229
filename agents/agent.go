package agents

import (
	"context"

	"github.com/fishbait/customs"
	js "github.com/fishbait/customs/jsonschema"
)

// shape is everything an agent defines itself; stamped derives the rest.
type shape[T any] interface {
	Rewrite(v any) any
	Verify(v any) bool
	Explain(ctx context.Context, v any) customs.Issues
	JSONSchema() (*js.Schema, error)
	Project(v any) T
}

// stamped completes a shape into a customs.Agent using the default decode.
type stamped[T any] struct{ shape[T] }

func (a stamped[T]) Decode(ctx context.Context, v any) (T, error) { return customs.Stamp[T](ctx, a, v) }
func (a stamped[T]) CanDecode(v any) bool                         { return a.Verify(a.Rewrite(v)) }
func (a stamped[T]) projectAny(v any) any                         { return a.Project(v) }

func newAgent[T any](s shape[T]) customs.Agent[T] { return stamped[T]{s} }

// anyProjector is implemented by every agent of this package so that untyped
// containers (Object, Union) can still hand out typed children.
type anyProjector interface {
	projectAny(v any) any
}

// project runs in's projection when it has one; foreign inspectors keep v.
func project(in customs.Inspector, v any) any {
	if p, ok := in.(anyProjector); ok {
		return p.projectAny(v)
	}
	return v
}

// explainChild returns child issues rebased under base, falling back to a
// generic mismatch when the child has nothing to say.
func explainChild(ctx context.Context, in customs.Inspector, base string, v any) customs.Issues {
	iss := in.Explain(ctx, v)
	if len(iss) == 0 {
		return customs.Issues{customs.MismatchAt(base, "", v)}
	}
	return customs.Rebase(base, iss)
}
