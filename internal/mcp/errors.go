package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/shielddash/internal/domain/auth"
	"github.com/rpggio/shielddash/internal/domain/dashboard"
	"github.com/rpggio/shielddash/internal/domain/settings"
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

var (
	errUnknownTool = errors.New("unknown tool")
	errBadParams   = errors.New("malformed arguments")
)

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &APIError{Code: "INVALID_CREDENTIALS", Message: "invalid credentials", RecoveryHint: "Check email and password; passwords need at least 6 characters"}
	case errors.Is(err, auth.ErrNotAuthenticated):
		return &APIError{Code: "NOT_AUTHENTICATED", Message: "sign in required", RecoveryHint: "Call login or signup first"}
	case errors.Is(err, dashboard.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Call list_projects for valid ids"}
	case errors.Is(err, dashboard.ErrNotificationNotFound):
		return &APIError{Code: "NOTIFICATION_NOT_FOUND", Message: "notification not found", RecoveryHint: "Call list_notifications for valid ids"}
	case errors.Is(err, dashboard.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, settings.ErrInvalidSettings):
		return &APIError{Code: "INVALID_SETTINGS", Message: err.Error()}
	case errors.Is(err, errBadParams):
		return &APIError{Code: "INVALID_ARGUMENTS", Message: err.Error(), RecoveryHint: "Check the tool input schema"}
	case errors.Is(err, errUnknownTool):
		return &APIError{Code: "UNKNOWN_TOOL", Message: err.Error()}
	default:
		return nil
	}
}
