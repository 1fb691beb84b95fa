package byteops

import "errors"

var (
	// ErrUnknownBatch is returned when a batch name cannot be parsed.
	ErrUnknownBatch = errors.New("unknown batch")
)
