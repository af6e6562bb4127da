package sim

import "errors"

var (
	// ErrNoBodies indicates a simulation was requested with fewer than one body.
	ErrNoBodies = errors.New("sim: at least one body is required")

	// ErrIndexOutOfRange is the panic value wrapped when a caller passes a body
	// index outside [0, Count()).
	ErrIndexOutOfRange = errors.New("sim: body index out of range")

	// ErrInvalidFrames indicates a run was requested for a non-positive frame count.
	ErrInvalidFrames = errors.New("sim: frame count must be positive")
)
