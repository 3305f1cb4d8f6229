package agents

import (
	"context"

	"github.com/fishbait/customs"
	js "github.com/fishbait/customs/jsonschema"
)

// Array accepts sequences whose every element conforms to item. The empty
// sequence always conforms.
func Array[E any](item customs.Agent[E]) customs.Agent[[]E] {
	return newAgent[[]E](arrayShape[E]{item: item})
}

type arrayShape[E any] struct {
	item customs.Agent[E]
}

// Rewrite rewrites every element into a fresh []any of the same length.
// Non-sequences are returned unchanged.
func (a arrayShape[E]) Rewrite(v any) any {
	src, ok := customs.AsSlice(v)
	if !ok {
		return v
	}
	out := make([]any, len(src))
	for i, e := range src {
		out[i] = a.item.Rewrite(e)
	}
	return out
}

func (a arrayShape[E]) Verify(v any) bool {
	src, ok := customs.AsSlice(v)
	if !ok {
		return false
	}
	for _, e := range src {
		if !a.item.Verify(e) {
			return false
		}
	}
	return true
}

func (a arrayShape[E]) Explain(ctx context.Context, v any) customs.Issues {
	src, ok := customs.AsSlice(v)
	if !ok {
		return customs.Issues{customs.MismatchAt("/", "array", v)}
	}
	var iss customs.Issues
	for i, e := range src {
		if a.item.Verify(e) {
			continue
		}
		iss = customs.AppendIssues(iss, explainChild(ctx, a.item, customs.IndexPointer(i), e)...)
		if customs.IsFailFast(ctx) {
			break
		}
	}
	return iss
}

func (a arrayShape[E]) JSONSchema() (*js.Schema, error) {
	items, err := a.item.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: items}, nil
}

func (a arrayShape[E]) Project(v any) []E {
	src, _ := customs.AsSlice(v)
	out := make([]E, len(src))
	for i, e := range src {
		out[i] = a.item.Project(e)
	}
	return out
}
