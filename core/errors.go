package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidDateRange  = errors.New("start date must be before or equal to end date")
	ErrEndpointNotFound  = errors.New("api endpoint not found")
	ErrMalformedResponse = errors.New("api returned an invalid response")
	ErrRetryExhausted    = errors.New("retries exhausted")
)

// StatusError is a non-2xx response from the API, keeping the status code and
// the URL that produced it.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	switch e.StatusCode {
	case 401:
		return fmt.Sprintf("authentication required for %s", e.URL)
	case 403:
		return fmt.Sprintf("access forbidden for %s", e.URL)
	default:
		return fmt.Sprintf("http error %d from %s", e.StatusCode, e.URL)
	}
}

// Transient reports whether the status code is worth retrying. Server errors
// and 429 are transient; everything else in 4xx is a caller problem.
func (e *StatusError) Transient() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}
