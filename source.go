package customs

import (
	"io"
	"sync"

	eng "github.com/fishbait/customs/internal/engine"
	jsonsrc "github.com/fishbait/customs/source/json"
)

// TokenKind enumerates JSON token kinds.
type TokenKind int

const (
	TokenBeginObject TokenKind = iota
	TokenEndObject
	TokenBeginArray
	TokenEndArray
	TokenKey
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// Token describes a token in the input stream. Offset records the byte position
// when known (-1 otherwise).
type Token struct {
	Kind   TokenKind
	String string // Stored for key/string tokens.
	Number string // Stored as text; NumberMode controls downstream interpretation.
	Bool   bool
	Offset int64
}

// Source abstracts over polymorphic input sources.
type Source interface {
	NextToken() (Token, error)
	NumberMode() NumberMode
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver converts JSON input into a Source via a pluggable SPI. The default
// implementation is based on encoding/json and may be swapped with SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default encoding/json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver used by JSONReader/JSONBytes.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// DefaultJSONDriver returns the encoding/json-backed driver.
func DefaultJSONDriver() JSONDriver { return defaultJSONDriver{} }

// defaultJSONDriver wraps the encoding/json implementation.
type defaultJSONDriver struct{}

func (defaultJSONDriver) NewReader(r io.Reader) Source {
	return &engineSourceAdapter{inner: jsonsrc.NewReader(r), numMode: NumberJSONNumber}
}
func (defaultJSONDriver) NewBytes(b []byte) Source {
	return &engineSourceAdapter{inner: jsonsrc.NewBytes(b), numMode: NumberJSONNumber}
}
func (defaultJSONDriver) Name() string { return "encoding/json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return CurrentJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return CurrentJSONDriver().NewBytes(b) }

// SourceFromEngine wraps an engine.TokenSource as a customs.Source.
func SourceFromEngine(inner eng.TokenSource, mode NumberMode) Source {
	return &engineSourceAdapter{inner: inner, numMode: mode}
}

// WithNumberMode wraps a Source and overrides its NumberMode.
func WithNumberMode(s Source, m NumberMode) Source { return &overrideNumberMode{inner: s, mode: m} }

type overrideNumberMode struct {
	inner Source
	mode  NumberMode
}

func (o *overrideNumberMode) NextToken() (Token, error) { return o.inner.NextToken() }
func (o *overrideNumberMode) NumberMode() NumberMode    { return o.mode }
func (o *overrideNumberMode) Location() int64           { return o.inner.Location() }

type engineSourceAdapter struct {
	inner   eng.TokenSource
	numMode NumberMode
}

func (s *engineSourceAdapter) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: fromEngineKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (s *engineSourceAdapter) NumberMode() NumberMode { return s.numMode }
func (s *engineSourceAdapter) Location() int64        { return s.inner.Location() }

func fromEngineKind(k eng.Kind) TokenKind {
	switch k {
	case eng.KindBeginObject:
		return TokenBeginObject
	case eng.KindEndObject:
		return TokenEndObject
	case eng.KindBeginArray:
		return TokenBeginArray
	case eng.KindEndArray:
		return TokenEndArray
	case eng.KindKey:
		return TokenKey
	case eng.KindString:
		return TokenString
	case eng.KindNumber:
		return TokenNumber
	case eng.KindBool:
		return TokenBool
	default:
		return TokenNull
	}
}
