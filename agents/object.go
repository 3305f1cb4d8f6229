package agents

import (
	"context"
	"sort"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/i18n"
	js "github.com/fishbait/customs/jsonschema"
)

// Shape declares the fields of an Object: field name -> agent.
type Shape map[string]customs.Inspector

// Object accepts mappings that carry every declared field with a conforming
// value. Undeclared fields are allowed and passed through untouched.
//
// The stamped map holds each declared field projected by its agent (so a
// Nullable(Number()) field stamps as *float64) and undeclared fields as-is.
func Object(fields Shape) customs.Agent[map[string]any] {
	o := objectShape{fields: make(Shape, len(fields)), keys: make([]string, 0, len(fields))}
	for k, a := range fields {
		if a == nil {
			continue
		}
		o.fields[k] = a
		o.keys = append(o.keys, k)
	}
	// stable order for issues and schema output
	sort.Strings(o.keys)
	return newAgent[map[string]any](o)
}

type objectShape struct {
	fields Shape
	keys   []string
}

// Rewrite rewrites the declared fields that are present into a copy of the
// mapping. Non-mappings are returned unchanged.
func (o objectShape) Rewrite(v any) any {
	m, ok := customs.AsMap(v)
	if !ok {
		return v
	}
	out := make(map[string]any, len(m))
	for k, fv := range m {
		if a, declared := o.fields[k]; declared {
			out[k] = a.Rewrite(fv)
			continue
		}
		out[k] = fv
	}
	return out
}

func (o objectShape) Verify(v any) bool {
	m, ok := customs.AsMap(v)
	if !ok {
		return false
	}
	for _, k := range o.keys {
		fv, present := m[k]
		if !present || !o.fields[k].Verify(fv) {
			return false
		}
	}
	return true
}

func (o objectShape) Explain(ctx context.Context, v any) customs.Issues {
	m, ok := customs.AsMap(v)
	if !ok {
		return customs.Issues{customs.MismatchAt("/", "object", v)}
	}
	failFast := customs.IsFailFast(ctx)
	var iss customs.Issues
	for _, k := range o.keys {
		fv, present := m[k]
		switch {
		case !present:
			iss = customs.AppendIssues(iss, customs.Issue{
				Path:    customs.FieldPointer(k),
				Code:    customs.CodeRequired,
				Message: i18n.T(customs.CodeRequired, nil),
				Hint:    "required property missing",
			})
		case !o.fields[k].Verify(fv):
			iss = customs.AppendIssues(iss, explainChild(ctx, o.fields[k], customs.FieldPointer(k), fv)...)
		default:
			continue
		}
		if failFast {
			break
		}
	}
	return iss
}

func (o objectShape) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.keys))
	for _, k := range o.keys {
		s, err := o.fields[k].JSONSchema()
		if err != nil {
			return nil, err
		}
		props[k] = s
	}
	req := append([]string(nil), o.keys...)
	return &js.Schema{Type: "object", Properties: props, Required: req, AdditionalProperties: true}, nil
}

func (o objectShape) Project(v any) map[string]any {
	m, ok := customs.AsMap(v)
	if !ok {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, fv := range m {
		if a, declared := o.fields[k]; declared {
			out[k] = project(a, fv)
			continue
		}
		out[k] = fv
	}
	return out
}
