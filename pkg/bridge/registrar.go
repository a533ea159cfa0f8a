package bridge

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// State is the registrar's registration state.
type State string

const (
	StateUnsupported  State = "unsupported"
	StateUnregistered State = "unregistered"
	StateRegistered   State = "registered"
)

// Registrar drives the three-step registration sequence: permission grant,
// token issuance, backend registration. If any step fails the state stays
// unregistered and the failing step's reason is surfaced. Out-of-band
// permission revocation is detected lazily via Refresh, not pushed.
type Registrar struct {
	platform Platform
	devices  DeviceAPI
	logger   *slog.Logger

	mu    sync.RWMutex
	state State
	token string
}

// RegistrarOption configures a Registrar.
type RegistrarOption func(*Registrar)

// WithRegistrarLogger sets the logger for the Registrar.
func WithRegistrarLogger(logger *slog.Logger) RegistrarOption {
	return func(r *Registrar) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistrar creates a registrar. The initial state is unsupported when
// the platform lacks the capability, otherwise unregistered.
func NewRegistrar(platform Platform, devices DeviceAPI, opts ...RegistrarOption) *Registrar {
	r := &Registrar{
		platform: platform,
		devices:  devices,
		logger:   slog.Default(),
		state:    StateUnregistered,
	}
	if !platform.Supported() {
		r.state = StateUnsupported
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current registration state.
func (r *Registrar) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Token returns the push token from the last successful registration.
func (r *Registrar) Token() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

// Register runs the permission → token → backend sequence. It is a no-op
// when already registered.
func (r *Registrar) Register(ctx context.Context, info DeviceInfo) error {
	switch r.State() {
	case StateUnsupported:
		return ErrUnsupportedPlatform
	case StateRegistered:
		return nil
	}

	if err := r.platform.RequestPermission(ctx); err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "notification permission not granted",
			slog.Any("error", err),
		)
		if errors.Is(err, ErrPermissionDenied) {
			return err
		}
		return errors.Join(ErrPermissionDenied, err)
	}

	token, err := r.platform.Token(ctx)
	if err != nil {
		return errors.Join(ErrTokenIssuance, err)
	}

	if err := r.devices.Register(ctx, token, info); err != nil {
		return errors.Join(ErrBackendRegistration, err)
	}

	r.mu.Lock()
	r.state = StateRegistered
	r.token = token
	r.mu.Unlock()

	r.logger.LogAttrs(ctx, slog.LevelInfo, "device registered for push notifications",
		slog.String("device_type", info.DeviceType),
	)
	return nil
}

// Unregister revokes all device tokens server-side and returns the
// registrar to the unregistered state.
func (r *Registrar) Unregister(ctx context.Context) error {
	if r.State() != StateRegistered {
		return ErrNotRegistered
	}

	if err := r.devices.Unregister(ctx); err != nil {
		return errors.Join(ErrBackendRegistration, err)
	}

	r.mu.Lock()
	r.state = StateUnregistered
	r.token = ""
	r.mu.Unlock()
	return nil
}

// Refresh re-checks the platform grant and downgrades a registered state
// when permission was revoked out-of-band. Returns the state after the
// check.
func (r *Registrar) Refresh(ctx context.Context) State {
	if r.State() != StateRegistered {
		return r.State()
	}
	if r.platform.PermissionGranted(ctx) {
		return StateRegistered
	}

	r.mu.Lock()
	r.state = StateUnregistered
	r.token = ""
	r.mu.Unlock()

	r.logger.LogAttrs(ctx, slog.LevelInfo, "notification permission revoked out-of-band, device unregistered")
	return StateUnregistered
}
