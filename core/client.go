package core

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL points at a local API server; override with --base-url.
	DefaultBaseURL = "http://localhost:4321"

	eventsPath = "/api/events"

	// maxAttempts bounds transient-failure retries, first try included.
	maxAttempts = 3
)

type Client interface {
	GetEvents(ctx context.Context, startDate, endDate string) ([]Event, error)
}

type ClientConfig struct {
	BaseURL          string
	Timeout          time.Duration
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
}

type client struct {
	baseURL string
	http    *resty.Client
	cache   *responseCache
}

func NewClient(cfg ClientConfig) Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	if cfg.RetryWaitTime == 0 {
		cfg.RetryWaitTime = 1 * time.Second
	}

	if cfg.RetryMaxWaitTime == 0 {
		cfg.RetryMaxWaitTime = 4 * time.Second
	}

	// Wait time doubles between attempts up to the configured max.
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(maxAttempts - 1).
		SetRetryWaitTime(cfg.RetryWaitTime).
		SetRetryMaxWaitTime(cfg.RetryMaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}

			return r.StatusCode() >= 500 || r.StatusCode() == 429
		})

	return &client{baseURL: baseURL, http: httpClient, cache: newResponseCache()}
}

// GetEvents fetches the events for the given validated date range, serving
// repeated requests for the same range from the in-memory cache.
func (c *client) GetEvents(ctx context.Context, startDate, endDate string) ([]Event, error) {
	requestURL := fmt.Sprintf("%s%s?start_date=%s&end_date=%s", c.baseURL, eventsPath, startDate, endDate)

	if events, ok := c.cache.get(requestURL); ok {
		log.Debug().Str("url", requestURL).Msg("cache hit, skipping network call")
		return events, nil
	}

	log.Debug().Str("url", requestURL).Msg("requesting events")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"start_date": startDate,
			"end_date":   endDate,
		}).
		Get(eventsPath)
	if err != nil {
		return nil, classifyTransportError(requestURL, err)
	}

	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("%w: %s, check that the API server is running and the endpoint is correct", ErrEndpointNotFound, requestURL)
	}

	if !resp.IsSuccess() {
		statusErr := &StatusError{URL: requestURL, StatusCode: resp.StatusCode()}
		if statusErr.Transient() {
			// A transient status at this point survived every retry.
			return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetryExhausted, resp.Request.Attempt, statusErr)
		}

		return nil, statusErr
	}

	events, err := ValidateResponseBody(resp.Body())
	if err != nil {
		return nil, err
	}

	c.cache.put(requestURL, events)
	log.Info().Int("count", len(events)).Msg("fetched events from API")

	return events, nil
}

// classifyTransportError separates timeouts from connection failures. Both
// are transient, so by the time resty hands the error back the retry budget
// is already spent.
func classifyTransportError(requestURL string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w after %d attempts: request to %s timed out: %w", ErrRetryExhausted, maxAttempts, requestURL, err)
	}

	return fmt.Errorf("%w after %d attempts: failed to connect to %s: %w", ErrRetryExhausted, maxAttempts, requestURL, err)
}
