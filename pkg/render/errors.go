package render

import "errors"

var (
	// ErrNilPayload is returned when building a view for a notification
	// with no active variant.
	ErrNilPayload = errors.New("notification has no variant payload")

	// ErrUnknownOption is returned when selecting a poll option id that is
	// not part of the poll.
	ErrUnknownOption = errors.New("unknown poll option")

	// ErrNoSelection is returned when submitting a poll without any
	// selected option.
	ErrNoSelection = errors.New("poll submission requires at least one selection")

	// ErrAlreadySubmitted is returned by poll interactions after the
	// one-shot submission.
	ErrAlreadySubmitted = errors.New("poll has already been submitted")

	// ErrNoCoupon is returned when rendering coupon artifacts for a
	// promotion without a coupon code.
	ErrNoCoupon = errors.New("promotion has no coupon code")

	// ErrNoHandler is returned when a button dispatch needs a handler the
	// caller did not supply.
	ErrNoHandler = errors.New("no handler configured for action")
)
