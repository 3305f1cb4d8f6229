// Package yaml turns YAML documents into customs Sources so that fixtures and
// hand-written payloads can be checked like JSON. Mapping keys keep document
// order, which lets the duplicate-key policy see every key.
package yaml

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fishbait/customs"
	eng "github.com/fishbait/customs/internal/engine"
)

// NewBytes parses one YAML document. Parse failures surface from the first
// NextToken call.
func NewBytes(b []byte) customs.Source {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return customs.SourceFromEngine(eng.ErrorSource(err), customs.NumberJSONNumber)
	}
	toks, err := appendNode(make([]eng.Token, 0, 64), &doc, 0)
	if err != nil {
		return customs.SourceFromEngine(eng.ErrorSource(err), customs.NumberJSONNumber)
	}
	return customs.SourceFromEngine(eng.ReplaySource(toks), customs.NumberJSONNumber)
}

// NewReader reads r fully and parses it as YAML.
func NewReader(r io.Reader) customs.Source {
	b, err := io.ReadAll(r)
	if err != nil {
		return customs.SourceFromEngine(eng.ErrorSource(err), customs.NumberJSONNumber)
	}
	return NewBytes(b)
}

// maxAliasDepth bounds alias expansion.
const maxAliasDepth = 64

func appendNode(out []eng.Token, n *yaml.Node, aliases int) ([]eng.Token, error) {
	var err error
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return append(out, eng.Token{Kind: eng.KindNull, Offset: -1}), nil
		}
		return appendNode(out, n.Content[0], aliases)
	case yaml.AliasNode:
		if aliases >= maxAliasDepth || n.Alias == nil {
			return out, fmt.Errorf("yaml: line %d: alias nesting too deep", n.Line)
		}
		return appendNode(out, n.Alias, aliases+1)
	case yaml.MappingNode:
		out = append(out, eng.Token{Kind: eng.KindBeginObject, Offset: -1})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return out, fmt.Errorf("yaml: line %d: mapping key must be a scalar", k.Line)
			}
			out = append(out, eng.Token{Kind: eng.KindKey, String: k.Value, Offset: -1})
			if out, err = appendNode(out, n.Content[i+1], aliases); err != nil {
				return out, err
			}
		}
		return append(out, eng.Token{Kind: eng.KindEndObject, Offset: -1}), nil
	case yaml.SequenceNode:
		out = append(out, eng.Token{Kind: eng.KindBeginArray, Offset: -1})
		for _, c := range n.Content {
			if out, err = appendNode(out, c, aliases); err != nil {
				return out, err
			}
		}
		return append(out, eng.Token{Kind: eng.KindEndArray, Offset: -1}), nil
	case yaml.ScalarNode:
		tok, err := scalarToken(n)
		if err != nil {
			return out, err
		}
		return append(out, tok), nil
	}
	return out, fmt.Errorf("yaml: line %d: unsupported node kind %d", n.Line, n.Kind)
}

func scalarToken(n *yaml.Node) (eng.Token, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return eng.Token{}, err
	}
	switch x := v.(type) {
	case nil:
		return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
	case bool:
		return eng.Token{Kind: eng.KindBool, Bool: x, Offset: -1}, nil
	case int:
		return eng.Token{Kind: eng.KindNumber, Number: strconv.Itoa(x), Offset: -1}, nil
	case int64:
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(x, 10), Offset: -1}, nil
	case uint64:
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatUint(x, 10), Offset: -1}, nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return eng.Token{}, fmt.Errorf("yaml: line %d: %s has no JSON equivalent", n.Line, n.Value)
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(x, 'g', -1, 64), Offset: -1}, nil
	case time.Time:
		return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}, nil
	case string:
		return eng.Token{Kind: eng.KindString, String: x, Offset: -1}, nil
	}
	return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}, nil
}
