package scrape

import "errors"

var (
	// ErrNilBuilder is returned when Run is given no builder.
	ErrNilBuilder = errors.New("scrape: nil builder")

	// ErrVerification is returned in strict mode when the report is inconsistent.
	ErrVerification = errors.New("scrape: report verification failed")
)
