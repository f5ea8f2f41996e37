package repository

import "errors"

// Sentinel kinds for snapshot errors.
var (
	ErrNilReport = errors.New("nil report")
	ErrNilBuild  = errors.New("nil build function")
)
