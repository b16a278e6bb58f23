package mask

import "errors"

var (
	// ErrInvalidFormat is returned when a value does not have the shape the
	// masker requires, e.g. an email without exactly one "@".
	ErrInvalidFormat = errors.New("invalid format")
)
