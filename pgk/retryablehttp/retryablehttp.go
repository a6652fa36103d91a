package retryablehttp

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

type RetryConfig struct {
	MaxRetries int           // maximum attempts (default 3)
	BaseDelay  time.Duration // base delay (default 100ms)
	MaxDelay   time.Duration // delay ceiling (default 5s)
	MaxJitter  time.Duration // maximum jitter (default 100ms)
}

type RetryableClient struct {
	client      *http.Client
	retryConfig RetryConfig
}

func NewRetryableClient(config RetryConfig) *RetryableClient {
	return NewRetryableClientFrom(&http.Client{}, config)
}

// NewRetryableClientFrom wraps an existing *http.Client so retried requests
// share its transport state, in particular the session cookie jar.
func NewRetryableClientFrom(client *http.Client, config RetryConfig) *RetryableClient {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.BaseDelay == 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay == 0 {
		config.MaxDelay = 5 * time.Second
	}
	if config.MaxJitter == 0 {
		config.MaxJitter = 100 * time.Millisecond
	}

	return &RetryableClient{
		client:      client,
		retryConfig: config,
	}
}

// isRetryable decides whether another attempt makes sense.
func (c *RetryableClient) isRetryable(resp *http.Response, err error) bool {
	if err != nil {
		// network errors always retry
		return true
	}

	if resp == nil {
		return false
	}

	// retry on server errors and rate limiting
	statusCode := resp.StatusCode
	return statusCode == 0 ||
		(statusCode >= 500 && statusCode <= 599) || // 502 Bad Gateway, 503 Service Unavailable, 504 Gateway Timeout etc
		statusCode == 429 || // Too Many Requests
		statusCode == 408 // Request Timeout
}

func (c *RetryableClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		resp, err = c.client.Do(req)

		if err == nil && !c.isRetryable(resp, nil) {
			return resp, nil
		}

		// close the body before retrying
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		if attempt == c.retryConfig.MaxRetries {
			if resp != nil {
				return resp, fmt.Errorf("last attempt failed: %s", resp.Status)
			}
			return nil, fmt.Errorf("last attempt failed: %v", err)
		}

		// exponential backoff + jitter
		delay := c.backoffDelay(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("unexpected error")
}

// backoffDelay grows exponentially with the attempt number, capped at
// MaxDelay, plus random jitter.
func (c *RetryableClient) backoffDelay(attempt int) time.Duration {
	backoff := time.Duration(1<<uint(attempt)) * c.retryConfig.BaseDelay
	if backoff > c.retryConfig.MaxDelay {
		backoff = c.retryConfig.MaxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(c.retryConfig.MaxJitter)))
	return backoff + jitter
}
