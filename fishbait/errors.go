package fishbait

import (
	"context"
	"errors"
	"fmt"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/agents"
)

// Error codes the backend reports in errorCode.
const (
	MissingSessionIDError = "MissingSessionIdError"
	UnknownSessionIDError = "UnknownSessionIdError"
	ServerOverloadedError = "ServerOverloadedError"
)

// APIErrorAgent accepts the backend's error body {error_message, error_code}.
func APIErrorAgent() customs.Agent[map[string]any] {
	return agents.Unsnake(agents.Object(agents.Shape{
		"errorMessage": agents.String(),
		"errorCode":    agents.String(),
	}))
}

// APIError is an error reported by the backend.
type APIError struct {
	Code    string `json:"errorCode"`
	Message string `json:"errorMessage"`
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

// AsAPIError stamps v as an APIError. Bodies that are not error bodies fail
// with the agent's issues.
func AsAPIError(ctx context.Context, v any) (*APIError, error) {
	e, err := agents.Bind[APIError](APIErrorAgent()).Decode(ctx, v)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// IsSessionError reports whether err is an APIError asking for a new session.
func IsSessionError(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Code == MissingSessionIDError || ae.Code == UnknownSessionIDError
}

// IsServerOverloaded reports whether err is the backend's overload error.
func IsServerOverloaded(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Code == ServerOverloadedError
}
