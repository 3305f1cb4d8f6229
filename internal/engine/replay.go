package engine

import "io"

// ReplaySource replays a prepared token slice. Sources that parse a whole
// document up front (YAML) hand their tokens to the engine through it.
func ReplaySource(tokens []Token) TokenSource { return &replay{tokens: tokens} }

// ErrorSource yields err on the first NextToken call.
func ErrorSource(err error) TokenSource { return &replay{err: err} }

type replay struct {
	tokens []Token
	idx    int
	err    error
}

func (s *replay) NextToken() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	if s.idx >= len(s.tokens) {
		return Token{}, io.EOF
	}
	t := s.tokens[s.idx]
	s.idx++
	return t, nil
}

func (s *replay) Location() int64 { return -1 }
