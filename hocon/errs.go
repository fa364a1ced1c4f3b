package hocon

import "errors"

var (
	// ErrRender wraps any failure surfacing from a render call.
	ErrRender = errors.New("render error")
	// ErrOption indicates text that does not name a style option variant.
	ErrOption = errors.New("bad option")
)
