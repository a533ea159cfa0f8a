package richpush

import "errors"

var (
	// ErrMalformedPayload is returned when a rich-payload field was present
	// on the envelope but could not be parsed. The normalizer never guesses
	// a partial variant in that case.
	ErrMalformedPayload = errors.New("malformed rich notification payload")

	// ErrUnknownType is returned for a type discriminant outside the closed
	// variant set.
	ErrUnknownType = errors.New("unknown notification type")

	// ErrNoVariant is returned when no variant payload is populated.
	ErrNoVariant = errors.New("no variant payload set")

	// ErrAmbiguousVariant is returned when more than one variant payload is
	// populated on the same notification.
	ErrAmbiguousVariant = errors.New("multiple variant payloads set")

	// ErrVariantMismatch is returned when the populated variant does not
	// agree with the type discriminant.
	ErrVariantMismatch = errors.New("variant payload does not match type")

	// ErrInvalidNotification wraps field-level validation failures.
	ErrInvalidNotification = errors.New("invalid notification payload")
)
