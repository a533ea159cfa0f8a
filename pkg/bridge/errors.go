package bridge

import "errors"

var (
	// ErrUnsupportedPlatform means the host lacks the required push
	// capability. Surfaced once through the registrar's state, never
	// retried.
	ErrUnsupportedPlatform = errors.New("platform does not support push notifications")

	// ErrPermissionDenied means the user declined the permission prompt.
	// Terminal for the session; a new attempt requires an explicit
	// user-initiated retry.
	ErrPermissionDenied = errors.New("notification permission denied")

	// ErrTokenIssuance wraps failures to obtain a push token.
	ErrTokenIssuance = errors.New("failed to obtain push token")

	// ErrBackendRegistration wraps failures to register the token with the
	// backend device registry.
	ErrBackendRegistration = errors.New("failed to register device with backend")

	// ErrNotRegistered is returned when unregistering without a prior
	// successful registration.
	ErrNotRegistered = errors.New("device is not registered")
)
