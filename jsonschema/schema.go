// Package jsonschema holds the JSON Schema subset agents export themselves to.
package jsonschema

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Enumerations and unions
	Enum  []any     `json:"enum,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
}

// Of returns a schema of the given primitive type.
func Of(typ string) *Schema { return &Schema{Type: typ} }

// Union builds an anyOf of the alternatives, flattening nested anyOf nodes
// without a type of their own.
func Union(alts ...*Schema) *Schema {
	out := &Schema{}
	for _, a := range alts {
		if a == nil {
			continue
		}
		if a.Type == "" && len(a.AnyOf) > 0 && a.Enum == nil && a.Properties == nil {
			out.AnyOf = append(out.AnyOf, a.AnyOf...)
			continue
		}
		out.AnyOf = append(out.AnyOf, a)
	}
	return out
}
