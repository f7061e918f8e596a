package match

import "errors"

var (
	// ErrInvalidConfig is returned by New when a Config value cannot be
	// satisfied, such as a hash table width outside the supported range.
	ErrInvalidConfig = errors.New("invalid matcher configuration")

	// ErrCapacityOverflow is returned by Append when the buffer would no
	// longer fit in the position width of the matcher. The buffer is left
	// unchanged, but the instance should not be used further.
	ErrCapacityOverflow = errors.New("buffer exceeds position width")

	// ErrBadToken is returned by Replay when a token refers to data that does
	// not exist.
	ErrBadToken = errors.New("invalid token")
)
