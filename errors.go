package transfile

import (
	"fmt"
)

// ShortReadError reports that OpenHandle could not fill the span computed
// from the handle bounds. Unlike ReadBytes, which silently clamps and
// reports the shortfall in its count, a handle-bounded open requires every
// byte of the span to be present.
type ShortReadError struct {
	// Cause is the underlying read error
	Cause error
	// Want is the span size computed from the handle bounds
	Want int
	// Got is the number of bytes actually read
	Got int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("transfile: short read: got %d of %d bytes: %v", e.Got, e.Want, e.Cause)
}

func (e *ShortReadError) Unwrap() error {
	return e.Cause
}

// NewShortReadError creates a ShortReadError
func NewShortReadError(cause error, want, got int) error {
	return &ShortReadError{Cause: cause, Want: want, Got: got}
}
