package docdeck

import (
	"context"
	"time"
)

// MaxBackoff caps the delay between retry attempts.
const MaxBackoff = 30 * time.Second

// RetryPolicy decides whether and when a failed operation is attempted
// again. It is an explicit value so it can be tested without network
// mocking: swap Backoff for a zero function in tests.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts including the first.
	MaxAttempts int

	// Backoff returns the delay before attempt n (1-based, so the delay
	// after the first failure is Backoff(1)).
	Backoff func(attempt int) time.Duration

	// IsRetryable reports whether the error is worth another attempt.
	IsRetryable func(err error) bool
}

// DefaultRetryPolicy retries server and transport errors up to maxAttempts
// with exponential backoff: the delay before attempt n is min(2^n, 30)
// seconds. Client errors (4xx-class codes) abort immediately; retrying a
// malformed query never succeeds.
func DefaultRetryPolicy(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     ExponentialBackoff,
		IsRetryable: IsRetryable,
	}
}

// ExponentialBackoff returns min(2^attempt seconds, MaxBackoff).
func ExponentialBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 4 {
		// 2^5 already exceeds the cap.
		return MaxBackoff
	}
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > MaxBackoff {
		return MaxBackoff
	}
	return d
}

// IsRetryable reports whether the error carries a server or transport
// code. Client errors are never retried.
func IsRetryable(err error) bool {
	switch ErrorCode(err) {
	case EINTERNAL, EUNAVAILABLE:
		return true
	}
	return false
}

// Retry runs fn up to policy.MaxAttempts times, sleeping policy.Backoff
// between attempts. It stops early on success, on a non-retryable error,
// or when the context is done.
func Retry(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) error) error {
	maxAttempts := policy.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if policy.IsRetryable != nil && !policy.IsRetryable(lastErr) {
			return lastErr
		}
		if attempt == maxAttempts {
			break
		}

		var delay time.Duration
		if policy.Backoff != nil {
			delay = policy.Backoff(attempt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}
