package trellis

import "errors"

// Sentinel errors. All errors returned by the package wrap one of these, so
// callers can classify failures with errors.Is regardless of the message.
var (
	// ErrInvalidArgument reports bad constructor dimensions, an invalid
	// layer index on a read path, or other rejected inputs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds reports a cell coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrNilInput reports a nil value where a non-nil one is required,
	// e.g. a nil cell pointer on a read or a nil glyph color.
	ErrNilInput = errors.New("nil input")
)
