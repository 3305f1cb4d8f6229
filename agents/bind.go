package agents

import (
	"bytes"
	"context"
	"reflect"

	j "github.com/goccy/go-json"

	"github.com/fishbait/customs"
	js "github.com/fishbait/customs/jsonschema"
)

// Bind stamps the values accepted by a into the struct type S, matching the
// stamped map to S through its json tags. Passing an S (or *S) back in is
// accepted: it is turned into its JSON mapping before a sees it.
func Bind[S any, T any](a customs.Agent[T]) customs.Agent[S] {
	return binding[S, T]{inner: a}
}

type binding[S any, T any] struct {
	inner customs.Agent[T]
}

func (b binding[S, T]) Rewrite(v any) any {
	switch v.(type) {
	case S, *S:
		if m, err := toTree(v); err == nil {
			v = m
		}
	}
	return b.inner.Rewrite(v)
}

func (b binding[S, T]) Verify(v any) bool { return b.inner.Verify(v) }
func (b binding[S, T]) Explain(ctx context.Context, v any) customs.Issues {
	return b.inner.Explain(ctx, v)
}
func (b binding[S, T]) JSONSchema() (*js.Schema, error) { return b.inner.JSONSchema() }

// Project returns the zero S when the stamped value does not fit S; Decode
// reports that case as an issue.
func (b binding[S, T]) Project(v any) S {
	s, _ := b.bind(v)
	return s
}

func (b binding[S, T]) Decode(ctx context.Context, v any) (S, error) {
	var zero S
	rw := b.Rewrite(v)
	if !b.inner.Verify(rw) {
		iss := b.inner.Explain(ctx, rw)
		if len(iss) == 0 {
			iss = customs.Issues{customs.MismatchAt("/", "", rw)}
		}
		return zero, iss
	}
	s, err := b.bind(rw)
	if err != nil {
		return zero, customs.Issues{{
			Path:    "/",
			Code:    customs.CodeInvalidType,
			Message: err.Error(),
			Hint:    "stamped value does not fit " + reflect.TypeOf(zero).String(),
			Cause:   err,
		}}
	}
	return s, nil
}

func (b binding[S, T]) CanDecode(v any) bool { return b.Verify(b.Rewrite(v)) }
func (b binding[S, T]) projectAny(v any) any  { return b.Project(v) }

func (b binding[S, T]) bind(v any) (S, error) {
	var out S
	if s, ok := v.(S); ok {
		return s, nil
	}
	data, err := j.Marshal(b.inner.Project(v))
	if err != nil {
		return out, err
	}
	err = j.Unmarshal(data, &out)
	return out, err
}

// toTree re-encodes a Go value as the plain JSON tree (numbers as json.Number).
func toTree(v any) (any, error) {
	data, err := j.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
