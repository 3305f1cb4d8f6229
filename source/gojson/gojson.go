// Package gojson is a JSON driver backed by github.com/goccy/go-json.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/fishbait/customs"
	eng "github.com/fishbait/customs/internal/engine"
)

// Driver returns a customs.JSONDriver backed by goccy/go-json.
func Driver() customs.JSONDriver { return driver{} }

type driver struct{}

func (driver) NewReader(r io.Reader) customs.Source {
	return customs.SourceFromEngine(NewReader(r), customs.NumberJSONNumber)
}
func (driver) NewBytes(b []byte) customs.Source {
	return customs.SourceFromEngine(NewBytes(b), customs.NumberJSONNumber)
}
func (driver) Name() string { return "go-json" }

type source struct {
	dec  *j.Decoder
	keys eng.KeyTracker
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
// go-json does not report input offsets, so Location is always -1.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	out := eng.Token{Offset: -1}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.keys.Open(true)
			out.Kind = eng.KindBeginObject
		case '[':
			s.keys.Open(false)
			out.Kind = eng.KindBeginArray
		case '}':
			s.keys.Close()
			out.Kind = eng.KindEndObject
		default:
			s.keys.Close()
			out.Kind = eng.KindEndArray
		}
	case string:
		out.Kind = s.keys.String()
		out.String = v
	case bool:
		s.keys.Scalar()
		out.Kind, out.Bool = eng.KindBool, v
	case j.Number:
		s.keys.Scalar()
		out.Kind, out.Number = eng.KindNumber, string(v)
	case float64:
		s.keys.Scalar()
		out.Kind, out.Number = eng.KindNumber, strconv.FormatFloat(v, 'g', -1, 64)
	default:
		s.keys.Scalar()
		out.Kind = eng.KindNull
	}
	return out, nil
}

func (s *source) Location() int64 { return -1 }
