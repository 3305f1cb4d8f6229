package agents

import (
	"context"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/i18n"
	js "github.com/fishbait/customs/jsonschema"
)

// Union accepts a value conforming to left or right. Left wins ties: when
// both sides match, left's rewrite and projection are used.
func Union(left, right customs.Inspector) customs.Agent[any] {
	return newAgent[any](unionShape[any]{left: left, right: right, projectLeft: func(v any) any {
		return project(left, v)
	}, projectRight: func(v any) any {
		return project(right, v)
	}})
}

// OneOf is Union for two agents that stamp the same type.
func OneOf[T any](left, right customs.Agent[T]) customs.Agent[T] {
	return newAgent[T](unionShape[T]{left: left, right: right, projectLeft: left.Project, projectRight: right.Project})
}

// Nullable accepts null or a value conforming to a. Null stamps as a nil
// pointer.
func Nullable[T any](a customs.Agent[T]) customs.Agent[*T] {
	return newAgent[*T](nullableShape[T]{
		unionShape: unionShape[any]{left: Null(), right: a},
		inner:      a,
	})
}

type unionShape[T any] struct {
	left, right  customs.Inspector
	projectLeft  func(any) T
	projectRight func(any) T
}

func (u unionShape[T]) Rewrite(v any) any {
	if r := u.left.Rewrite(v); u.left.Verify(r) {
		return r
	}
	if r := u.right.Rewrite(v); u.right.Verify(r) {
		return r
	}
	return v
}

func (u unionShape[T]) Verify(v any) bool { return u.left.Verify(v) || u.right.Verify(v) }

func (u unionShape[T]) Explain(ctx context.Context, v any) customs.Issues {
	if u.Verify(v) {
		return nil
	}
	var causes customs.Issues
	causes = customs.AppendIssues(causes, u.left.Explain(ctx, v)...)
	if !customs.IsFailFast(ctx) {
		causes = customs.AppendIssues(causes, u.right.Explain(ctx, v)...)
	}
	it := customs.Issue{
		Path:    "/",
		Code:    customs.CodeUnionNoMatch,
		Message: i18n.T(customs.CodeUnionNoMatch, nil),
		Params:  map[string]any{"got": customs.KindOf(v)},
	}
	if len(causes) > 0 {
		it.Cause = causes
	}
	return customs.Issues{it}
}

func (u unionShape[T]) JSONSchema() (*js.Schema, error) {
	l, err := u.left.JSONSchema()
	if err != nil {
		return nil, err
	}
	r, err := u.right.JSONSchema()
	if err != nil {
		return nil, err
	}
	return js.Union(l, r), nil
}

func (u unionShape[T]) Project(v any) T {
	if u.left.Verify(v) {
		return u.projectLeft(v)
	}
	return u.projectRight(v)
}

type nullableShape[T any] struct {
	unionShape[any]
	inner customs.Agent[T]
}

// Explain reports the inner agent's issues for non-null values.
func (n nullableShape[T]) Explain(ctx context.Context, v any) customs.Issues {
	if n.Verify(v) {
		return nil
	}
	iss := n.inner.Explain(ctx, v)
	if len(iss) == 0 {
		return customs.Issues{customs.MismatchAt("/", "", v)}
	}
	return iss
}

func (n nullableShape[T]) Project(v any) *T {
	if customs.IsNull(v) {
		return nil
	}
	x := n.inner.Project(v)
	return &x
}
