package edgar

import (
	"context"
	"time"
)

// fetchFunc is the signature of a retryable fetch.
type fetchFunc func(ctx context.Context) (string, error)

// DefaultRetryDelays returns the backoff delays for download retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays attempts a fetch with backoff retries, one
// initial attempt plus one retry per delay. Context cancellation is
// checked before each sleep.
func FetchWithRetryDelays(ctx context.Context, fetch fetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := fetch(ctx)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
