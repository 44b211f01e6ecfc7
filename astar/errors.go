package astar

import (
	"github.com/pkg/errors"
)

// Caller errors. They are detected before any search state changes and are
// never retried.
var (
	ErrInvalidConfiguration = errors.New("invalid grid configuration")
	ErrPrecondition         = errors.New("search precondition violated")
	ErrOutOfBounds          = errors.New("cell out of bounds")
	ErrOccupied             = errors.New("cell holds start or end")
	ErrBadLayout            = errors.New("malformed grid layout")
)
