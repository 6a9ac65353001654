package repositories

import "errors"

// ErrCorruptState is returned when a state file exists but cannot be decoded
// into the expected shape.
var ErrCorruptState = errors.New("corrupt state")
