package customs

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
)

// The helpers below are read-only views over a candidate value. A candidate is
// usually the plain tree produced by a JSON decoder (map[string]any, []any,
// string, json.Number/float64, bool, nil), but agents also accept typed Go
// values produced by an earlier Decode so that decoding a stamped value again
// is a no-op. None of the helpers mutate their input.

var jsonNumberType = reflect.TypeOf(json.Number(""))

// IsNull reports whether v is JSON null: a nil interface or a nil pointer.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// deref follows pointers; it returns an invalid Value for null.
func deref(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// AsString views v as a string. Named string types qualify; json.Number does not.
func AsString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := deref(v)
	if !rv.IsValid() || rv.Kind() != reflect.String || rv.Type() == jsonNumberType {
		return "", false
	}
	return rv.String(), true
}

// AsNumber views v as a number. json.Number and every Go integer or float
// kind qualify. A legal JSON literal too large for float64 views as ±Inf, so
// ±Inf is accepted; NaN is never a JSON number and is rejected.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case json.Number:
		return numberLiteral(string(n))
	case int:
		return float64(n), true
	}
	rv := deref(v)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f, !math.IsNaN(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.String:
		if rv.Type() == jsonNumberType {
			return numberLiteral(rv.String())
		}
	}
	return 0, false
}

// numberLiteral parses s when it is a JSON number literal. Literals beyond the
// float64 range parse to ±Inf.
func numberLiteral(s string) (float64, bool) {
	if !isJSONNumber(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// isJSONNumber reports whether s is exactly one JSON number: it must start
// with '-' or a digit and end with a digit, which leaves no room for
// surrounding whitespace or for another kind of value.
func isJSONNumber(s string) bool {
	if s == "" {
		return false
	}
	first, last := s[0], s[len(s)-1]
	if first != '-' && (first < '0' || first > '9') || last < '0' || last > '9' {
		return false
	}
	return json.Valid([]byte(s))
}

// AsBool views v as a bool.
func AsBool(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	rv := deref(v)
	if !rv.IsValid() || rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// AsSlice views v as an ordered sequence. []any is returned as-is; other slice
// and array kinds are copied element-wise into a fresh []any.
func AsSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := deref(v)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

// AsMap views v as a non-null key/value mapping. map[string]any is returned
// as-is; other maps keyed by a string kind are copied into a fresh map.
func AsMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := deref(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		out[it.Key().String()] = it.Value().Interface()
	}
	return out, true
}

// KindOf names the JSON kind of v for diagnostics.
func KindOf(v any) string {
	if IsNull(v) {
		return "null"
	}
	if _, ok := AsBool(v); ok {
		return "boolean"
	}
	if _, ok := AsNumber(v); ok {
		return "number"
	}
	if _, ok := AsString(v); ok {
		return "string"
	}
	if _, ok := AsSlice(v); ok {
		return "array"
	}
	if _, ok := AsMap(v); ok {
		return "object"
	}
	return reflect.TypeOf(v).String()
}
