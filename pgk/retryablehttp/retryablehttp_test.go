package retryablehttp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetryableClient_Defaults(t *testing.T) {
	config := RetryConfig{}
	client := NewRetryableClient(config)

	assert.Equal(t, 3, client.retryConfig.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, client.retryConfig.BaseDelay)
	assert.Equal(t, 5*time.Second, client.retryConfig.MaxDelay)
	assert.Equal(t, 100*time.Millisecond, client.retryConfig.MaxJitter)
}

func TestNewRetryableClientFrom_KeepsClient(t *testing.T) {
	base := &http.Client{Timeout: 7 * time.Second}
	client := NewRetryableClientFrom(base, RetryConfig{})

	assert.Same(t, base, client.client)
}

func TestIsRetryable_NetworkError(t *testing.T) {
	client := NewRetryableClient(RetryConfig{})
	result := client.isRetryable(nil, fmt.Errorf("network error"))
	assert.True(t, result)
}

func TestIsRetryable_ServerErrors(t *testing.T) {
	client := NewRetryableClient(RetryConfig{})

	tests := []int{500, 502, 503, 504, 599, 429, 408}
	for _, code := range tests {
		t.Run(fmt.Sprintf("Status_%d", code), func(t *testing.T) {
			resp := httptest.NewRecorder()
			resp.WriteHeader(code)
			result := client.isRetryable(resp.Result(), nil)
			assert.True(t, result)
		})
	}
}

func TestIsRetryable_SuccessNoRetry(t *testing.T) {
	client := NewRetryableClient(RetryConfig{})

	tests := []int{200, 201, 400, 401, 403, 404}
	for _, code := range tests {
		t.Run(fmt.Sprintf("Status_%d", code), func(t *testing.T) {
			resp := httptest.NewRecorder()
			resp.WriteHeader(code)
			result := client.isRetryable(resp.Result(), nil)
			assert.False(t, result)
		})
	}
}

func TestBackoffDelay_Calculation(t *testing.T) {
	config := RetryConfig{
		BaseDelay: 100 * time.Millisecond,
		MaxDelay:  2 * time.Second,
		MaxJitter: 50 * time.Millisecond,
	}
	client := &RetryableClient{retryConfig: config}

	delay0 := client.backoffDelay(0)
	assert.GreaterOrEqual(t, delay0, 100*time.Millisecond)
	assert.Less(t, delay0, 150*time.Millisecond)

	delay3 := client.backoffDelay(3)
	assert.GreaterOrEqual(t, delay3, 800*time.Millisecond)
	assert.LessOrEqual(t, delay3, 2*time.Second+50*time.Millisecond)
}

func TestDo_SuccessFirstTry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer server.Close()

	client := NewRetryableClient(RetryConfig{})
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), req)

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}

func TestDo_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRetryableClient(RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		MaxJitter:  time.Millisecond,
	})
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), req)

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_ContextCanceled(t *testing.T) {
	client := NewRetryableClient(RetryConfig{})
	req, err := http.NewRequest(http.MethodGet, "http://localhost:0", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Do(ctx, req)

	assert.ErrorIs(t, err, context.Canceled)
}
