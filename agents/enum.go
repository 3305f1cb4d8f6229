package agents

import (
	"context"
	"sort"
	"strings"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/i18n"
	js "github.com/fishbait/customs/jsonschema"
)

// Enum accepts exactly one of the given string literals. Nothing is coerced:
// values of another kind or outside the set are rejected.
func Enum[T ~string](values ...T) customs.Agent[T] {
	e := enumShape[T]{members: make(map[string]struct{}, len(values)), order: make([]string, 0, len(values))}
	for _, v := range values {
		s := string(v)
		if _, dup := e.members[s]; dup {
			continue
		}
		e.members[s] = struct{}{}
		e.order = append(e.order, s)
	}
	return newAgent[T](e)
}

// EnumMap builds an Enum from a name -> value table; only the values are
// members. Members are ordered by name.
func EnumMap[T ~string](m map[string]T) customs.Agent[T] {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	values := make([]T, 0, len(m))
	for _, n := range names {
		values = append(values, m[n])
	}
	return Enum(values...)
}

type enumShape[T ~string] struct {
	members map[string]struct{}
	order   []string
}

func (enumShape[T]) Rewrite(v any) any { return v }

func (e enumShape[T]) Verify(v any) bool {
	s, ok := customs.AsString(v)
	if !ok {
		return false
	}
	_, ok = e.members[s]
	return ok
}

func (e enumShape[T]) Explain(_ context.Context, v any) customs.Issues {
	if e.Verify(v) {
		return nil
	}
	got, ok := customs.AsString(v)
	if !ok {
		return customs.Issues{customs.MismatchAt("/", "string", v)}
	}
	return customs.Issues{{
		Path:    "/",
		Code:    customs.CodeInvalidEnum,
		Message: i18n.T(customs.CodeInvalidEnum, nil),
		Hint:    "one of: " + strings.Join(e.order, ", "),
		Params:  map[string]any{"got": got, "expected": e.order},
	}}
}

func (e enumShape[T]) JSONSchema() (*js.Schema, error) {
	vals := make([]any, len(e.order))
	for i, s := range e.order {
		vals[i] = s
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}

func (enumShape[T]) Project(v any) T {
	s, _ := customs.AsString(v)
	return T(s)
}
