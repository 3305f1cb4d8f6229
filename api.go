package customs

import (
	"context"

	"github.com/fishbait/customs/i18n"
	js "github.com/fishbait/customs/jsonschema"
)

// Inspector is the untyped view of an agent. Composite agents hold their
// children as Inspectors so that heterogeneous fields can share one shape.
type Inspector interface {
	// Rewrite prepares v for verification (recursing into children it owns).
	// It must be pure and a no-op on values that already conform.
	Rewrite(v any) any

	// Verify reports whether v is a valid instance of the agent's shape. It
	// does not assume Rewrite has run and never mutates v.
	Verify(v any) bool

	// Explain returns the issues that make Verify(v) false, rooted at "/".
	// It returns nil exactly when Verify(v) is true.
	Explain(ctx context.Context, v any) Issues

	// JSONSchema projects the agent into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Agent inspects values for one data shape and stamps conforming ones as T.
type Agent[T any] interface {
	Inspector

	// Project converts a verified value into T. The result for a value that
	// does not verify is unspecified (typically the zero value).
	Project(v any) T

	// Decode turns an untrusted value into T or fails with Issues.
	Decode(ctx context.Context, v any) (T, error)

	// CanDecode is the soft check used to probe alternatives without
	// committing: Verify(Rewrite(v)).
	CanDecode(v any) bool
}

// Stamp is the decode shared by every agent except conversions:
// Rewrite -> Verify -> Project. On failure it returns the agent's Explain
// output (or a root invalid_type issue when the agent has nothing to say).
func Stamp[T any](ctx context.Context, a Agent[T], v any) (T, error) {
	var zero T
	if a == nil {
		return zero, singleIssue(CodeParseError, "nil agent")
	}
	rw := a.Rewrite(v)
	if !a.Verify(rw) {
		iss := a.Explain(ctx, rw)
		if len(iss) == 0 {
			iss = Issues{MismatchAt("/", "", rw)}
		}
		return zero, iss
	}
	return a.Project(rw), nil
}

// Decode is a thin wrapper around Agent.Decode, mirroring SafeDecode/Is.
func Decode[T any](ctx context.Context, a Agent[T], v any) (T, error) {
	if a == nil {
		var zero T
		return zero, singleIssue(CodeParseError, "nil agent")
	}
	return a.Decode(ctx, v)
}

// SafeDecode decodes v into T, returning (zero, false) on failure.
func SafeDecode[T any](ctx context.Context, a Agent[T], v any) (T, bool) {
	val, err := Decode(ctx, a, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is reports whether v can be stamped by a (the soft check).
func Is[T any](a Agent[T], v any) bool {
	if a == nil {
		return false
	}
	return a.CanDecode(v)
}

// MismatchAt builds an invalid_type issue for got at path. expected names the
// wanted kind ("string", "object", ...) and may be empty.
func MismatchAt(path, expected string, got any) Issue {
	params := map[string]any{"got": KindOf(got)}
	if expected != "" {
		params["expected"] = expected
	}
	return Issue{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Params: params}
}

// ---- Decode-time context options ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that marks fail-fast diagnostics.
// DecodeFrom sets it from ParseOpt; container agents stop explaining at the
// first issue when it is set.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current decode should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
