package dashboard

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNotificationNotFound indicates the notification doesn't exist.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrInvalidInput indicates invalid dashboard input.
	ErrInvalidInput = errors.New("invalid dashboard input")
)
