package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusError(t *testing.T) {
	t.Parallel()

	t.Run("messages", func(t *testing.T) {
		t.Parallel()

		unauthorized := &StatusError{URL: "http://api.test/api/events", StatusCode: 401}
		assert.Contains(t, unauthorized.Error(), "authentication required")

		forbidden := &StatusError{URL: "http://api.test/api/events", StatusCode: 403}
		assert.Contains(t, forbidden.Error(), "access forbidden")

		server := &StatusError{URL: "http://api.test/api/events", StatusCode: 502}
		assert.Contains(t, server.Error(), "http error 502")
		assert.Contains(t, server.Error(), "http://api.test/api/events")
	})

	t.Run("transient classification", func(t *testing.T) {
		t.Parallel()

		for _, code := range []int{429, 500, 502, 503, 504} {
			assert.True(t, (&StatusError{StatusCode: code}).Transient(), "code %d", code)
		}

		for _, code := range []int{400, 401, 403, 404, 418} {
			assert.False(t, (&StatusError{StatusCode: code}).Transient(), "code %d", code)
		}
	})

	t.Run("wrapping preserves the cause", func(t *testing.T) {
		t.Parallel()

		cause := &StatusError{URL: "http://api.test", StatusCode: 503}
		err := fmt.Errorf("%w after 3 attempts: %w", ErrRetryExhausted, cause)

		assert.ErrorIs(t, err, ErrRetryExhausted)

		var statusErr *StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 503, statusErr.StatusCode)
	})
}
