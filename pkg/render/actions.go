package render

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/wanderlabs/pushkit/pkg/richpush"
)

// Clipboard abstracts the host clipboard so the dispatch policy is testable
// without one.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard writes through the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Handlers are the caller-supplied effects of button dispatch. Dismiss and
// Action report what happened; Open navigates to a target; Confirm surfaces
// a transient confirmation such as a "copied" toast.
type Handlers struct {
	Dismiss func()
	Action  func(action string, buttonType richpush.ButtonType)
	Open    func(url string) error
	Confirm func(message string)
}

// Dispatcher routes action-button clicks to their effects:
//
//   - DISMISS closes via the dismiss callback, always, regardless of the
//     button's action content.
//   - ACTION with a "copy:" directive copies the suffix to the clipboard
//     and surfaces a confirmation; any other ACTION forwards to the action
//     handler.
//   - LINK and DEEPLINK forward to the action handler and additionally
//     open the action value as a navigable target.
type Dispatcher struct {
	handlers  Handlers
	clipboard Clipboard
	logger    *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithClipboard overrides the system clipboard.
func WithClipboard(c Clipboard) DispatcherOption {
	return func(d *Dispatcher) {
		if c != nil {
			d.clipboard = c
		}
	}
}

// WithDispatcherLogger sets the logger for the Dispatcher.
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a dispatcher over the given handlers.
func NewDispatcher(handlers Handlers, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		handlers:  handlers,
		clipboard: SystemClipboard{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch executes the effect of a button click.
func (d *Dispatcher) Dispatch(ctx context.Context, button richpush.ActionButton) error {
	switch button.ButtonType {
	case richpush.ButtonDismiss:
		if d.handlers.Dismiss == nil {
			return ErrNoHandler
		}
		d.handlers.Dismiss()
		return nil

	case richpush.ButtonAction:
		if payload, ok := button.CopyPayload(); ok {
			return d.copy(ctx, payload)
		}
		if d.handlers.Action == nil {
			return ErrNoHandler
		}
		d.handlers.Action(button.Action, button.ButtonType)
		return nil

	case richpush.ButtonLink, richpush.ButtonDeeplink:
		if d.handlers.Action != nil {
			d.handlers.Action(button.Action, button.ButtonType)
		}
		if d.handlers.Open == nil {
			return ErrNoHandler
		}
		return d.handlers.Open(button.Action)
	}

	d.logger.LogAttrs(ctx, slog.LevelWarn, "ignoring button with unknown type",
		slog.String("button_type", string(button.ButtonType)),
	)
	return nil
}

func (d *Dispatcher) copy(ctx context.Context, payload string) error {
	if err := d.clipboard.WriteText(payload); err != nil {
		d.logger.LogAttrs(ctx, slog.LevelWarn, "clipboard write failed",
			slog.Any("error", err),
		)
		return err
	}
	if d.handlers.Confirm != nil {
		d.handlers.Confirm("Copied to clipboard")
	}
	return nil
}
