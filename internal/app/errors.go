package service

import "errors"

// Sentinel kinds for report errors.
var (
	ErrReportUnavailable = errors.New("medal report unavailable")
	ErrCountryNotFound   = errors.New("country not found")
	ErrServiceStopped    = errors.New("service stopped")
)
