// Package bridge funnels the two push delivery channels, foreground and
// background, into one normalize-then-store pipeline, and owns device
// registration state.
//
// # Architecture
//
//   - Platform, Notifier, WindowManager, DeviceAPI: capability-provider
//     interfaces isolating the host environment (permission prompts, tray
//     display, window focus, the backend device registry), so the dispatch
//     policy is testable without a real browser or OS.
//
//   - Registrar: the unsupported/unregistered/registered state and the
//     three-step registration sequence (permission, token, backend). Any
//     failing step leaves the state unregistered with the step's reason;
//     out-of-band revocation is detected lazily by Refresh.
//
//   - Bridge: Foreground stores and fans out to in-app subscriptions,
//     mirroring to the tray only as a permitted convenience duplicate;
//     Background stores and always raises a tray notification tagged with
//     the stored id. HandleClick focuses a window matching the click
//     action or opens a new one.
//
// Both channels share the same richpush normalizer and inbox store, so the
// parsing logic cannot drift between execution contexts.
//
// # Usage
//
//	box := inbox.New(inbox.NewMemoryStorage())
//	b := bridge.New(box, platform,
//	    bridge.WithNotifier(notifier),
//	    bridge.WithWindowManager(windows),
//	)
//
//	sub := b.Subscribe(ctx)
//	go func() {
//	    for stored := range sub.Receive() {
//	        showToast(stored)
//	    }
//	}()
//
//	stored, err := b.Foreground(ctx, envelope)
//
// FCMNotifier adapts a Firebase Cloud Messaging client to the Notifier
// interface; AMQPSource runs a queue consumer as the background execution
// context, feeding envelopes into Bridge.Background.
package bridge
