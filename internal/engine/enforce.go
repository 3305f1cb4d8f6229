package engine

import (
	"strconv"
	"strings"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is the engine's issue; the root package lifts it into
// customs.Issue.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError carries the SimpleIssue that stopped a token stream.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// EnforceOptions limits what a token stream may contain.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink receives every issue, fatal or not.
	IssueSink func(SimpleIssue)
	// FailFast turns warnings into errors.
	FailFast bool
}

// WrapWithEnforcement returns a TokenSource that applies the duplicate key
// policy and the depth and size limits to inner. Issues carry the JSON Pointer
// of the offending key or container.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcer{inner: inner, opt: opt}
}

type enforcer struct {
	inner TokenSource
	opt   EnforceOptions
	stack []scope
}

// scope is one open container.
type scope struct {
	path   string
	object bool
	keys   map[string]struct{}
	key    string // last key read in an object
	index  int    // next element index in an array
}

func (e *enforcer) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	path := e.pathOf(tok)

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		s := scope{path: path, object: tok.Kind == KindBeginObject}
		if s.object {
			s.keys = make(map[string]struct{})
		}
		e.stack = append(e.stack, s)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, e.fatal(SimpleIssue{Code: "parse_error", Path: rootSlash(path), Message: "max depth exceeded"})
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
	case KindKey:
		if top := e.top(); top != nil && top.object {
			if _, seen := top.keys[tok.String]; seen && e.opt.OnDuplicate != DupIgnore {
				si := SimpleIssue{Code: "duplicate_key", Path: rootSlash(path), Message: "key '" + tok.String + "' duplicated"}
				if e.opt.OnDuplicate == DupError || e.opt.FailFast {
					return Token{}, e.fatal(si)
				}
				e.report(si)
			}
			top.keys[tok.String] = struct{}{}
			top.key = tok.String
		}
	}

	if e.opt.MaxBytes > 0 {
		if off := e.Location(); off > e.opt.MaxBytes {
			return Token{}, e.fatal(SimpleIssue{Code: "truncated", Path: rootSlash(path), Message: "max bytes exceeded"})
		}
	}
	return tok, nil
}

func (e *enforcer) Location() int64 { return e.inner.Location() }

func (e *enforcer) top() *scope {
	if n := len(e.stack); n > 0 {
		return &e.stack[n-1]
	}
	return nil
}

// pathOf returns the pointer tok belongs to: a key's own pointer, a value's
// slot in its container, or the container itself for closing tokens.
func (e *enforcer) pathOf(tok Token) string {
	top := e.top()
	if top == nil {
		return ""
	}
	switch tok.Kind {
	case KindEndObject, KindEndArray:
		return top.path
	case KindKey:
		return joinPointer(top.path, tok.String)
	}
	if top.object {
		return joinPointer(top.path, top.key)
	}
	p := joinPointer(top.path, strconv.Itoa(top.index))
	top.index++
	return p
}

func (e *enforcer) report(si SimpleIssue) {
	if e.opt.IssueSink != nil {
		e.opt.IssueSink(si)
	}
}

func (e *enforcer) fatal(si SimpleIssue) error {
	e.report(si)
	return IssueError{si}
}

func rootSlash(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
