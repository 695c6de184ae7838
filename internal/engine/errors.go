package engine

import "errors"

var (
	// ErrInvalidArgument indicates structurally invalid input: an
	// unrecognized request mode. Normal data variance (unknown flow ids,
	// empty profiles, malformed conditions) never raises it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownVertical is wrapped into warnings only; vertical lookup
	// degrades to the default catalog rather than failing.
	ErrUnknownVertical = errors.New("unknown vertical")
)
