package rangelist

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned by Add and Remove, and by the range
	// constructors, when the input is not a valid range. The list is left
	// untouched.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds signals an access to the flattened endpoint view
	// outside [0, 2*Len()).
	ErrOutOfBounds = errors.New("index out of bounds")
)
