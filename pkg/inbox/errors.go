package inbox

import "errors"

var (
	// ErrStorageFailure wraps backend read/write failures. The Inbox
	// recovers from it locally: saves still return the constructed record
	// and reads degrade to an empty list.
	ErrStorageFailure = errors.New("inbox storage operation failed")

	// ErrCorruptRecord is returned by backends when a persisted entry can
	// no longer be decoded.
	ErrCorruptRecord = errors.New("corrupt inbox record")
)
