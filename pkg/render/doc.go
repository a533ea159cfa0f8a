// Package render turns notifications into presentation-ready view models
// and holds the interactive state behind them.
//
// Build produces a View for the passive variants (text, media, list, card).
// The interactive variants get stateful controllers: Carousel tracks a
// clamped page index, Poll tracks selection and one-shot submission, and
// Promo exposes coupon, validity and terms helpers. Dispatcher routes
// action-button clicks to their effects, including copy-to-clipboard
// directives.
//
//	view, err := render.Build(n)
//
//	poll, err := render.NewPoll(n, recorder)
//	_ = poll.Select("opt_a")
//	err = poll.Submit(ctx)
//
// Controllers are not safe for concurrent use; drive each from a single
// UI goroutine.
package render
