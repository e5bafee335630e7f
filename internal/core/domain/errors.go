package domain

import "errors"

var (
	// ErrInvalidCredentials is returned when the server rejects a
	// username/password pair at login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionExpired is returned when the server rejects the bearer
	// token on an authenticated call.
	ErrSessionExpired = errors.New("session expired or invalid")

	// ErrNotAuthenticated is returned for operations that require a
	// session while logged out.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForbidden is returned when the actor's profile set does not
	// allow the requested action.
	ErrForbidden = errors.New("action not allowed for current profile")

	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrUnknownRole       = errors.New("unknown role")

	// ErrUnavailable covers transport failures and server 5xx responses.
	ErrUnavailable = errors.New("service unavailable")
)
