package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds  = errors.New("index out of range")
	ErrEditDeclined = errors.New("decline edit")
	ErrNoAlmanac    = errors.New("no almanac loaded")
	ErrNoReload     = errors.New("source cannot be reloaded")
)
