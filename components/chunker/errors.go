package chunker

import "errors"

var (
	// ErrInvalidConfig is returned when a chunking configuration cannot make
	// forward progress, e.g. a non-positive chunk size or an overlap that is
	// negative or not smaller than the chunk size.
	ErrInvalidConfig = errors.New("chunker: invalid configuration")
	// ErrEmptyChunks is returned when statistics are requested for an empty
	// chunk collection.
	ErrEmptyChunks = errors.New("chunker: empty chunk collection")
)
