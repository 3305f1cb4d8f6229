package engine

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// ErrTrailingData is returned when a document holds more than one top-level value.
var ErrTrailingData = errors.New("engine: trailing data after top-level value")

// NumberConv turns the textual number of a token into a tree value.
type NumberConv func(string) (any, error)

// JSONNumber keeps numbers as json.Number.
func JSONNumber(s string) (any, error) { return json.Number(s), nil }

// Float64 parses numbers as float64. Literals beyond the float64 range become
// ±Inf.
func Float64(s string) (any, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, err
	}
	return f, nil
}

// DecodeAnyFromSource builds the untyped tree (map[string]any, []any, string,
// json.Number, bool, nil) from the token source. Exactly one top-level value
// is accepted.
func DecodeAnyFromSource(src TokenSource) (any, error) {
	return DecodeDocument(src, JSONNumber)
}

// DecodeAnyFromSourceAsFloat64 builds the tree but decodes numbers as float64.
func DecodeAnyFromSourceAsFloat64(src TokenSource) (any, error) {
	return DecodeDocument(src, Float64)
}

// DecodeDocument decodes one top-level value with conv and rejects trailing tokens.
func DecodeDocument(src TokenSource, conv NumberConv) (any, error) {
	tok, err := src.NextToken()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	v, err := decodeValue(src, tok, conv)
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

func decodeValue(src TokenSource, tok Token, conv NumberConv) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return decodeObject(src, conv)
	case KindBeginArray:
		return decodeArray(src, conv)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return conv(tok.Number)
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func decodeObject(src TokenSource, conv NumberConv) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := next(src)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := next(src)
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(src, vt, conv)
		if err != nil {
			return nil, err
		}
		// later duplicates overwrite earlier ones when the policy lets them through
		m[tok.String] = v
	}
}

func decodeArray(src TokenSource, conv NumberConv) (any, error) {
	// empty arrays decode to a non-nil slice so they stay distinct from null
	arr := []any{}
	for {
		tok, err := next(src)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := decodeValue(src, tok, conv)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

// next reads a token inside a container, where EOF is always premature.
func next(src TokenSource) (Token, error) {
	tok, err := src.NextToken()
	if err == io.EOF {
		return Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}
