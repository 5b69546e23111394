package ir

import "errors"

var (
	// ErrCoerce reports a value that is neither a *Node nor a string.
	ErrCoerce = errors.New("cannot coerce value")
	// ErrIndex reports an out of range nest index.
	ErrIndex = errors.New("index out of range")
)
