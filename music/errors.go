package music

import "errors"

var (
	// ErrInvalidArgument is returned when a note, index, distance or duration
	// falls outside what the model supports.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrUnsupportedOperation = errors.New("unsupported operation")
)
