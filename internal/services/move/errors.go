package move

import "errors"

// Move-related errors
var (
	// ErrInvalidPositionSpec indicates a position keyword that cannot be
	// applied to the requested move, e.g. "up"/"down" combined with a
	// column change
	ErrInvalidPositionSpec = errors.New("invalid position spec")

	// ErrUnknownKeyword indicates a position keyword outside first|last|up|down
	ErrUnknownKeyword = errors.New("unknown position keyword")
)
