package richpush

import "strings"

const (
	// DismissAction is the conventional action value carried by dismiss
	// buttons. Handlers must close on ButtonDismiss regardless of the
	// action content, so this constant is informational.
	DismissAction = "dismiss"

	copyPrefix = "copy:"
)

// ActionButton is a call-to-action attached to a notification or one of its
// items. Action is opaque: a URL, a deep link, the literal "dismiss", or a
// "copy:<payload>" directive.
type ActionButton struct {
	Text       string     `json:"text" validate:"required"`
	Action     string     `json:"action,omitempty"`
	ButtonType ButtonType `json:"button_type" validate:"required,oneof=LINK DEEPLINK ACTION DISMISS"`
	IconURL    string     `json:"icon_url,omitempty"`
}

// CopyPayload returns the clipboard payload of a "copy:" directive and
// whether the button carries one.
func (b ActionButton) CopyPayload() (string, bool) {
	if !strings.HasPrefix(b.Action, copyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(b.Action, copyPrefix), true
}
