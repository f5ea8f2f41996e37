package wiki

import (
	"errors"
	"fmt"
)

// Sentinel kinds for fetch errors. Every error returned by Fetch matches
// ErrFetch and at most one of the narrower kinds.
var (
	ErrFetch      = errors.New("page fetch failed")
	ErrStatus     = errors.New("unexpected http status")
	ErrAPI        = errors.New("api reported an error")
	ErrDecode     = errors.New("malformed api response")
	ErrEmptyPage  = errors.New("page has no content")
	ErrEmptyTitle = errors.New("page title must not be empty")
)

// FetchError describes a failed page fetch.
type FetchError struct {
	Page   string
	Status int // HTTP status, 0 when no response arrived
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Page, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Page, e.Err)
}

// Unwrap exposes ErrFetch alongside the cause.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetch}
	}
	return []error{ErrFetch, e.Err}
}
