package mcp

import (
	"errors"
	"fmt"

	"github.com/mfeldt/etude-mcp/internal/domain/plan"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown ids in mutating
// tools are not errors; they surface as changed=false in the tool result.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, plan.ErrLessonNotFound):
		return &APIError{Code: "LESSON_NOT_FOUND", Message: "lesson not found", RecoveryHint: "Call list_lessons to see current ids"}
	default:
		return nil
	}
}

// wrapError converts a domain error to its API form, falling back to the
// original error when no mapping exists.
func wrapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
