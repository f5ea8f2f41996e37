package registry

import "errors"

// Sentinel kinds for registry construction errors.
var (
	ErrInvalidEntry  = errors.New("invalid registry entry")
	ErrDuplicateName = errors.New("duplicate registry name")
)
