package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateDateFormat checks that a date string is a real calendar date in
// strict YYYY-MM-DD form. time.Parse alone accepts unpadded components, so
// the shape is pinned first.
func ValidateDateFormat(date string) error {
	if len(date) != len(dateLayout) {
		return fmt.Errorf("%w: %q, expected YYYY-MM-DD (e.g. 2025-01-15)", ErrInvalidDateFormat, date)
	}

	for i, r := range date {
		if i == 4 || i == 7 {
			if r != '-' {
				return fmt.Errorf("%w: %q, expected YYYY-MM-DD (e.g. 2025-01-15)", ErrInvalidDateFormat, date)
			}

			continue
		}

		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q, expected YYYY-MM-DD (e.g. 2025-01-15)", ErrInvalidDateFormat, date)
		}
	}

	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: %q, expected YYYY-MM-DD (e.g. 2025-01-15)", ErrInvalidDateFormat, date)
	}

	return nil
}

// ValidateDateRange checks that start is not after end. Both arguments must
// already be valid YYYY-MM-DD dates.
func ValidateDateRange(startDate, endDate string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, startDate)
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, endDate)
	}

	if start.After(end) {
		return fmt.Errorf("%w: got %s to %s", ErrInvalidDateRange, startDate, endDate)
	}

	return nil
}

// DefaultEndDate returns the date 7 days after startDate, which must be a
// valid YYYY-MM-DD date.
func DefaultEndDate(startDate string) string {
	start, _ := time.Parse(dateLayout, startDate)
	return start.AddDate(0, 0, 7).Format(dateLayout)
}

// ValidateResponseBody decodes an API response body, requiring a JSON array
// of event objects. Anything else is malformed.
func ValidateResponseBody(body []byte) ([]Event, error) {
	// A null body would unmarshal into a nil slice without error, so the
	// array shape is pinned before decoding.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array, got: %s", ErrMalformedResponse, snippet(body))
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array, got: %s", ErrMalformedResponse, snippet(body))
	}

	events := make([]Event, 0, len(raw))

	for i, r := range raw {
		t := bytes.TrimSpace(r)
		if len(t) == 0 || t[0] != '{' {
			return nil, fmt.Errorf("%w: element %d is not an event object", ErrMalformedResponse, i)
		}

		var event Event
		if err := json.Unmarshal(r, &event); err != nil {
			return nil, fmt.Errorf("%w: element %d is not an event object", ErrMalformedResponse, i)
		}

		events = append(events, event)
	}

	return events, nil
}

func snippet(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}

	return string(body)
}
