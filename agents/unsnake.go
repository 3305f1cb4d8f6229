package agents

import (
	"context"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/fishbait/customs"
	js "github.com/fishbait/customs/jsonschema"
)

// Unsnake renames every top-level key of a mapping from snake_case to
// camelCase before handing it to inner. Keys already in camelCase keep their
// name. When two keys collide after renaming, the key that sorts last wins.
// Verification, explanation and projection are inner's.
func Unsnake[T any](inner customs.Agent[T]) customs.Agent[T] {
	return newAgent[T](unsnakeShape[T]{inner: inner})
}

type unsnakeShape[T any] struct {
	inner customs.Agent[T]
}

func (u unsnakeShape[T]) Rewrite(v any) any {
	m, ok := customs.AsMap(v)
	if !ok {
		return u.inner.Rewrite(v)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]any, len(m))
	for _, k := range keys {
		out[camelKey(k)] = m[k]
	}
	return u.inner.Rewrite(out)
}

// camelKey drops leading and trailing underscores before camel-casing, so
// "_id" becomes "id" rather than "Id".
func camelKey(k string) string { return strcase.ToLowerCamel(strings.Trim(k, "_")) }

func (u unsnakeShape[T]) Verify(v any) bool { return u.inner.Verify(v) }
func (u unsnakeShape[T]) Explain(ctx context.Context, v any) customs.Issues {
	return u.inner.Explain(ctx, v)
}
func (u unsnakeShape[T]) Project(v any) T { return u.inner.Project(v) }

// JSONSchema describes the wire form: top-level property names are given in
// snake_case.
func (u unsnakeShape[T]) JSONSchema() (*js.Schema, error) {
	s, err := u.inner.JSONSchema()
	if err != nil || s == nil || len(s.Properties) == 0 {
		return s, err
	}
	out := *s
	out.Properties = make(map[string]*js.Schema, len(s.Properties))
	for k, p := range s.Properties {
		out.Properties[strcase.ToSnake(k)] = p
	}
	out.Required = make([]string, len(s.Required))
	for i, k := range s.Required {
		out.Required[i] = strcase.ToSnake(k)
	}
	sort.Strings(out.Required)
	return &out, nil
}
