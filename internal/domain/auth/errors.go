package auth

import "errors"

var (
	// ErrInvalidCredentials is the only failure reported by login and
	// signup; it deliberately does not say which field was rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAuthenticated indicates there is no signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
)
