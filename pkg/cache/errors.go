package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork wraps failures to reach a shared backend.
var ErrNetwork = errors.New("network error")

// RetryableError marks an error from a backend dial or ping as transient.
type RetryableError struct{ Err error }

// Retryable wraps err so [Backoff.Retry] tries again. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err was wrapped with [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Backoff retries the connection checks of the Redis cache and the MongoDB
// store, which often start after mazegen in container setups.
type Backoff struct {
	Attempts int           // total calls, at least one
	Delay    time.Duration // wait before the second call, doubled afterwards
}

// DefaultBackoff makes three attempts over about three seconds.
var DefaultBackoff = Backoff{Attempts: 3, Delay: time.Second}

// Retry calls fn until it succeeds, returns an error not marked
// [Retryable], runs out of attempts or ctx ends.
func (b Backoff) Retry(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Delay
	var err error
	for i := range attempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return err
}

// RetryWithBackoff is [DefaultBackoff].Retry.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return DefaultBackoff.Retry(ctx, fn)
}
