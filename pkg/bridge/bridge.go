package bridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/wanderlabs/pushkit/pkg/inbox"
	"github.com/wanderlabs/pushkit/pkg/richpush"
)

// clickActionKey is the data key carrying the navigation target on a
// platform notification.
const clickActionKey = "click_action"

// Bridge funnels both delivery channels into the same normalize-then-store
// pipeline. Foreground delivery additionally feeds the in-app listener feed
// and may mirror to the platform tray; background delivery always raises a
// platform notification.
//
// The two channels are mutually exclusive at delivery time (the platform
// routes by focus state), so records are never deduplicated across them.
type Bridge struct {
	box      *inbox.Inbox
	platform Platform
	notifier Notifier
	windows  WindowManager
	feed     *feed
	logger   *slog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithNotifier sets the platform notification surface. Without one, tray
// display is skipped on both channels.
func WithNotifier(n Notifier) Option {
	return func(b *Bridge) { b.notifier = n }
}

// WithWindowManager sets the window surface used for click navigation.
func WithWindowManager(w WindowManager) Option {
	return func(b *Bridge) { b.windows = w }
}

// WithBridgeLogger sets the logger for the Bridge.
func WithBridgeLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithFeedBuffer sets the per-subscriber buffer of the foreground feed.
func WithFeedBuffer(size int) Option {
	return func(b *Bridge) { b.feed = newFeed(size) }
}

// New creates a bridge over the given inbox and platform.
func New(box *inbox.Inbox, platform Platform, opts ...Option) *Bridge {
	b := &Bridge{
		box:      box,
		platform: platform,
		feed:     newFeed(16),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers an in-app listener for foreground deliveries. The
// subscription is cleaned up when ctx is cancelled.
func (b *Bridge) Subscribe(ctx context.Context) *FeedSubscription {
	return b.feed.subscribe(ctx)
}

// Close shuts down the foreground feed and closes all subscriptions.
func (b *Bridge) Close() {
	b.feed.close()
}

// Foreground handles a message received while the app has focus: normalize,
// store, emit to in-app listeners, and, as a convenience duplicate, mirror
// to the platform tray when permitted and the envelope carries a display
// block.
func (b *Bridge) Foreground(ctx context.Context, env richpush.Envelope) (inbox.Stored, error) {
	n, err := b.normalize(ctx, env)
	if err != nil {
		return inbox.Stored{}, err
	}

	stored := b.box.Save(ctx, n)
	b.feed.publish(stored)

	if b.notifier != nil && env.Notification != nil && b.platform.PermissionGranted(ctx) {
		b.display(ctx, stored)
	}
	return stored, nil
}

// Background handles a message received without app focus: normalize,
// store, and raise a platform notification tagged with the stored id so
// the platform can coalesce duplicates.
func (b *Bridge) Background(ctx context.Context, env richpush.Envelope) (inbox.Stored, error) {
	n, err := b.normalize(ctx, env)
	if err != nil {
		return inbox.Stored{}, err
	}

	stored := b.box.Save(ctx, n)
	if b.notifier != nil {
		b.display(ctx, stored)
	}
	return stored, nil
}

// HandleClick implements the click-navigation contract for platform
// notification activation: focus an existing window whose URL equals the
// click action, else open a new one. An absent target defaults to "/".
func (b *Bridge) HandleClick(ctx context.Context, clickAction string) error {
	if b.windows == nil {
		return nil
	}
	if clickAction == "" {
		clickAction = "/"
	}

	windows, err := b.windows.Windows(ctx)
	if err != nil {
		return err
	}
	for _, w := range windows {
		if w.URL() == clickAction {
			return w.Focus(ctx)
		}
	}
	return b.windows.Open(ctx, clickAction)
}

// normalize wraps richpush.Normalize with the malformed-payload logging
// policy: the raw envelope is logged for diagnosis and nothing is stored.
func (b *Bridge) normalize(ctx context.Context, env richpush.Envelope) (richpush.Notification, error) {
	n, err := richpush.Normalize(env)
	if err != nil {
		raw, _ := json.Marshal(env)
		b.logger.LogAttrs(ctx, slog.LevelError, "dropping unparsable rich payload",
			slog.String("envelope", string(raw)),
			slog.Any("error", err),
		)
		return richpush.Notification{}, err
	}
	return n, nil
}

// display raises the platform notification for a stored record. Display
// failures are logged, never propagated: tray UI is best effort on both
// channels.
func (b *Bridge) display(ctx context.Context, stored inbox.Stored) {
	summary := stored.Notification.Summarize()

	tag := stored.ID
	if tag == "" {
		tag = strconv.FormatInt(stored.Timestamp, 10)
	}

	opts := DisplayOptions{
		Body:  summary.Body,
		Image: summary.ImageURL,
		Tag:   tag,
		Data: map[string]string{
			"id": stored.ID,
		},
		RequireInteraction: stored.Notification.Priority == richpush.PriorityHigh,
	}
	if summary.ClickAction != "" {
		opts.Data[clickActionKey] = summary.ClickAction
	}

	if err := b.notifier.Display(ctx, summary.Title, opts); err != nil {
		b.logger.LogAttrs(ctx, slog.LevelWarn, "failed to raise platform notification",
			slog.String("id", stored.ID),
			slog.Any("error", err),
		)
	}
}
