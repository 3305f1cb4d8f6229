package customs

import (
	"context"
	"errors"
	"io"

	eng "github.com/fishbait/customs/internal/engine"
)

// DecodeFrom is the boundary entry point. It consumes tokens from the Source,
// builds the untyped tree, and hands it to the agent's Decode. Agents never see
// bytes.
func DecodeFrom[T any](ctx context.Context, a Agent[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if a == nil {
		return zero, singleIssue(CodeParseError, "nil agent")
	}

	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	// propagate fail-fast intent via context for container agents
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	v, err := ReadValue(src, opt)
	if err != nil {
		return zero, err
	}
	return a.Decode(ctx, v)
}

// ReadValue builds the untyped tree from src under the enforcement options.
// Errors are returned as Issues.
func ReadValue(src Source, opt ParseOpt) (any, error) {
	if src == nil {
		return nil, singleIssue(CodeParseError, "nil source")
	}
	v, err := decodeAnyFromSource(src, opt)
	if err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

// StreamDecode validates input read from an io.Reader.
// When MaxBytes is set it enforces the size cap up front, otherwise it
// delegates directly to DecodeFrom via the Source driver.
func StreamDecode[T any](ctx context.Context, a Agent[T], r io.Reader, opts ...ParseOpt) (T, error) {
	if len(opts) > 0 && opts[len(opts)-1].MaxBytes > 0 {
		lr := io.LimitReader(r, opts[len(opts)-1].MaxBytes+1)
		data, err := io.ReadAll(lr)
		if err != nil {
			var zero T
			return zero, singleIssue(CodeParseError, err.Error())
		}
		if int64(len(data)) > opts[len(opts)-1].MaxBytes {
			var zero T
			return zero, singleIssue(CodeTruncated, "max bytes exceeded")
		}
		return DecodeFrom[T](ctx, a, JSONBytes(data), opts...)
	}
	return DecodeFrom[T](ctx, a, JSONReader(r), opts...)
}

// ---- helpers (decode, error mapping) ----

func decodeAnyFromSource(src Source, opt ParseOpt) (any, error) {
	engSrc := EngineTokenSource(src)
	enforced := eng.WrapWithEnforcement(engSrc, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		FailFast:    opt.FailFast,
	})
	// Switch behavior according to the requested NumberMode.
	switch src.NumberMode() {
	case NumberFloat64:
		return eng.DecodeAnyFromSourceAsFloat64(enforced)
	default:
		return eng.DecodeAnyFromSource(enforced)
	}
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message})
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Path: "/", Message: err.Error(), Cause: err})
}

// ---- Source -> engine.TokenSource adapter ----

type tokenSourceAdapter struct{ inner Source }

func (a *tokenSourceAdapter) NextToken() (eng.Token, error) {
	t, err := a.inner.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	return eng.Token{
		Kind:   toEngineKind(t.Kind),
		String: t.String,
		Number: t.Number,
		Bool:   t.Bool,
		Offset: t.Offset,
	}, nil
}

func (a *tokenSourceAdapter) Location() int64 { return a.inner.Location() }

// EngineTokenSource exposes the engine.TokenSource view of a customs.Source for internal users.
func EngineTokenSource(s Source) eng.TokenSource {
	// Fast-path: if s is already an engine-backed source, reuse the inner source.
	if ea, ok := s.(*engineSourceAdapter); ok {
		return ea.inner
	}
	return &tokenSourceAdapter{inner: s}
}

func toEngineKind(k TokenKind) eng.Kind {
	switch k {
	case TokenBeginObject:
		return eng.KindBeginObject
	case TokenEndObject:
		return eng.KindEndObject
	case TokenBeginArray:
		return eng.KindBeginArray
	case TokenEndArray:
		return eng.KindEndArray
	case TokenKey:
		return eng.KindKey
	case TokenString:
		return eng.KindString
	case TokenNumber:
		return eng.KindNumber
	case TokenBool:
		return eng.KindBool
	default:
		return eng.KindNull
	}
}
