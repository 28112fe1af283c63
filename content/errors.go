package content

import "errors"

var (
	// ErrInvalidLayout signals a violation of a structural invariant.
	ErrInvalidLayout = errors.New("content: invalid layout")
	// ErrIndexOutOfBounds signals an invalid element index.
	ErrIndexOutOfBounds = errors.New("content: index out of bounds")
)
