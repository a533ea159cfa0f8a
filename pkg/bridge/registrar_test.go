package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPlatform for testing registration and dispatch policy.
type MockPlatform struct {
	mock.Mock
}

func (m *MockPlatform) Supported() bool {
	return m.Called().Bool(0)
}

func (m *MockPlatform) RequestPermission(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockPlatform) PermissionGranted(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockPlatform) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockDeviceAPI for testing backend registration.
type MockDeviceAPI struct {
	mock.Mock
}

func (m *MockDeviceAPI) Register(ctx context.Context, token string, info DeviceInfo) error {
	return m.Called(ctx, token, info).Error(0)
}

func (m *MockDeviceAPI) Unregister(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestRegistrar_UnsupportedPlatform(t *testing.T) {
	platform := &MockPlatform{}
	platform.On("Supported").Return(false)

	r := NewRegistrar(platform, &MockDeviceAPI{})
	assert.Equal(t, StateUnsupported, r.State())

	err := r.Register(context.Background(), DeviceInfo{})
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Equal(t, StateUnsupported, r.State())
}

func TestRegistrar_RegisterSequence(t *testing.T) {
	info := DeviceInfo{DeviceType: "web", DeviceName: "Chrome on macOS"}

	tests := []struct {
		name      string
		setup     func(*MockPlatform, *MockDeviceAPI)
		wantErr   error
		wantState State
	}{
		{
			name: "all three steps succeed",
			setup: func(p *MockPlatform, d *MockDeviceAPI) {
				p.On("RequestPermission", mock.Anything).Return(nil)
				p.On("Token", mock.Anything).Return("tok-1", nil)
				d.On("Register", mock.Anything, "tok-1", info).Return(nil)
			},
			wantState: StateRegistered,
		},
		{
			name: "permission denied",
			setup: func(p *MockPlatform, d *MockDeviceAPI) {
				p.On("RequestPermission", mock.Anything).Return(ErrPermissionDenied)
			},
			wantErr:   ErrPermissionDenied,
			wantState: StateUnregistered,
		},
		{
			name: "token issuance fails",
			setup: func(p *MockPlatform, d *MockDeviceAPI) {
				p.On("RequestPermission", mock.Anything).Return(nil)
				p.On("Token", mock.Anything).Return("", errors.New("sdk offline"))
			},
			wantErr:   ErrTokenIssuance,
			wantState: StateUnregistered,
		},
		{
			name: "backend registration fails",
			setup: func(p *MockPlatform, d *MockDeviceAPI) {
				p.On("RequestPermission", mock.Anything).Return(nil)
				p.On("Token", mock.Anything).Return("tok-1", nil)
				d.On("Register", mock.Anything, "tok-1", info).Return(errors.New("503"))
			},
			wantErr:   ErrBackendRegistration,
			wantState: StateUnregistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := &MockPlatform{}
			platform.On("Supported").Return(true)
			devices := &MockDeviceAPI{}
			tt.setup(platform, devices)

			r := NewRegistrar(platform, devices)
			err := r.Register(context.Background(), info)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "tok-1", r.Token())
			}
			assert.Equal(t, tt.wantState, r.State())
		})
	}
}

func TestRegistrar_RegisterIdempotentWhenRegistered(t *testing.T) {
	platform := &MockPlatform{}
	platform.On("Supported").Return(true)
	platform.On("RequestPermission", mock.Anything).Return(nil).Once()
	platform.On("Token", mock.Anything).Return("tok-1", nil).Once()
	devices := &MockDeviceAPI{}
	devices.On("Register", mock.Anything, "tok-1", mock.Anything).Return(nil).Once()

	r := NewRegistrar(platform, devices)
	require.NoError(t, r.Register(context.Background(), DeviceInfo{}))
	require.NoError(t, r.Register(context.Background(), DeviceInfo{}))

	platform.AssertExpectations(t)
	devices.AssertExpectations(t)
}

func TestRegistrar_Unregister(t *testing.T) {
	platform := &MockPlatform{}
	platform.On("Supported").Return(true)
	platform.On("RequestPermission", mock.Anything).Return(nil)
	platform.On("Token", mock.Anything).Return("tok-1", nil)
	devices := &MockDeviceAPI{}
	devices.On("Register", mock.Anything, "tok-1", mock.Anything).Return(nil)
	devices.On("Unregister", mock.Anything).Return(nil)

	r := NewRegistrar(platform, devices)

	// Unregistering before registering is an error, not a state change.
	assert.ErrorIs(t, r.Unregister(context.Background()), ErrNotRegistered)

	require.NoError(t, r.Register(context.Background(), DeviceInfo{}))
	require.NoError(t, r.Unregister(context.Background()))
	assert.Equal(t, StateUnregistered, r.State())
	assert.Empty(t, r.Token())
}

func TestRegistrar_RefreshDetectsRevocation(t *testing.T) {
	platform := &MockPlatform{}
	platform.On("Supported").Return(true)
	platform.On("RequestPermission", mock.Anything).Return(nil)
	platform.On("Token", mock.Anything).Return("tok-1", nil)
	devices := &MockDeviceAPI{}
	devices.On("Register", mock.Anything, "tok-1", mock.Anything).Return(nil)

	r := NewRegistrar(platform, devices)
	require.NoError(t, r.Register(context.Background(), DeviceInfo{}))

	platform.On("PermissionGranted", mock.Anything).Return(true).Once()
	assert.Equal(t, StateRegistered, r.Refresh(context.Background()))

	// The grant disappears out-of-band; the next lazy check downgrades.
	platform.On("PermissionGranted", mock.Anything).Return(false).Once()
	assert.Equal(t, StateUnregistered, r.Refresh(context.Background()))
	assert.Equal(t, StateUnregistered, r.State())
}
