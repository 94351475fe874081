package font

import "errors"

var (
	// ErrInvalidFont is returned when font data is malformed.
	ErrInvalidFont = errors.New("font: invalid font data")

	// ErrNoFont is returned when a Manager has no font at the requested
	// index.
	ErrNoFont = errors.New("font: no such font")
)
