package service

import (
	"errors"
	"fmt"

	"github.com/quarrylabs/quarry-mcp/internal/quarry"
)

// Outcome tags attached to failed tool calls. Not-found failures use a
// per-kind tag of the form "<kind>_not_found" built from the missing
// entity's kind.
const (
	TagValidation  = "validation"
	TagConnection  = "connection"
	TagInternal    = "internal"
	TagUnknownTool = "unknown_tool"
)

// LifecycleError reports a failure to start or stop the server.
type LifecycleError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LifecycleError) Error() string {
	if e == nil {
		return "server lifecycle error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LifecycleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func lifecycleError(message string, err error) *LifecycleError {
	return &LifecycleError{Message: message, Err: err}
}

// MapToolError classifies a failed tool operation into caller-facing text,
// an outcome tag, and whether the failure is an expected domain condition.
// Unexpected failures never leak internal detail to the caller.
func MapToolError(err error) (text string, tag string, expected bool) {
	var notFound *quarry.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error(), notFound.Kind + "_not_found", true
	}
	var invalid *quarry.InvalidError
	if errors.As(err, &invalid) {
		return invalid.Error(), TagValidation, true
	}
	var conn *quarry.ConnectionError
	if errors.As(err, &conn) {
		return "could not reach the Quarry API; check the configured endpoint and network", TagConnection, false
	}
	var api *quarry.APIError
	if errors.As(err, &api) {
		return api.Error(), TagInternal, false
	}
	return "internal error while handling the tool call", TagInternal, false
}
