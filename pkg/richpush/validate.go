package richpush

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate is shared across calls; validator.Validate is safe for concurrent
// use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate enforces the union invariant and the per-variant required fields
// (carousel items non-empty, poll options non-empty, media type within the
// closed set, and so on). Failures are wrapped in ErrInvalidNotification.
func (n Notification) Validate() error {
	if err := n.checkVariant(); err != nil {
		return errors.Join(ErrInvalidNotification, err)
	}

	if err := validate.Struct(struct {
		Common
	}{n.Common}); err != nil {
		return errors.Join(ErrInvalidNotification, err)
	}

	if err := validate.Struct(n.Variant()); err != nil {
		return errors.Join(ErrInvalidNotification, err)
	}
	return nil
}
