package bridge

import "context"

// Platform abstracts the host capabilities the bridge depends on: feature
// detection, the user-facing permission prompt, and push token issuance.
// Keeping it behind an interface makes the dispatch policy testable without
// a real browser or OS environment.
type Platform interface {
	// Supported reports whether the host can deliver push notifications
	// at all. A false result is terminal for the bridge's lifetime.
	Supported() bool

	// RequestPermission prompts the user. Returns ErrPermissionDenied
	// when declined; a denial is terminal for the session and must not be
	// re-prompted automatically.
	RequestPermission(ctx context.Context) error

	// PermissionGranted re-checks the current grant without prompting.
	// Used for the lazy detection of out-of-band revocation.
	PermissionGranted(ctx context.Context) bool

	// Token returns the push token identifying this installation.
	Token(ctx context.Context) (string, error)
}

// DisplayOptions is the options bag for a platform notification. Tag should
// be the stored notification's id so the platform can coalesce duplicates
// carrying the same tag.
type DisplayOptions struct {
	Body               string
	Icon               string
	Badge              string
	Image              string
	Data               map[string]string
	Tag                string
	RequireInteraction bool
	Vibrate            []int
}

// Notifier raises platform-level notification UI.
type Notifier interface {
	Display(ctx context.Context, title string, opts DisplayOptions) error
}

// Window is one open application window.
type Window interface {
	URL() string
	Focus(ctx context.Context) error
}

// WindowManager enumerates and opens application windows. It backs the
// click-navigation contract: focus an existing window whose URL matches the
// notification's click action, else open a new one.
type WindowManager interface {
	Windows(ctx context.Context) ([]Window, error)
	Open(ctx context.Context, url string) error
}

// DeviceInfo describes this installation to the backend device registry.
type DeviceInfo struct {
	DeviceType string `json:"device_type"`
	DeviceName string `json:"device_name"`
}

// DeviceAPI is the backend device-registration client. Unregister revokes
// every token registered for the account's devices.
type DeviceAPI interface {
	Register(ctx context.Context, token string, info DeviceInfo) error
	Unregister(ctx context.Context) error
}
