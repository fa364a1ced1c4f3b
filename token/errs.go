package token

import "errors"

var (
	// ErrNotScalar indicates a composite node where a scalar was required.
	ErrNotScalar = errors.New("not a scalar")
	// ErrValue indicates a scalar whose value cannot be represented.
	ErrValue = errors.New("value error")
)
