package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrRetry marks an error as temporary. Blocking calls the function again on it.
var ErrRetry = errors.New("retry")

// Backoff blocks until the next attempt.
//
// It returns ctx.Err() when ctx is done before that.
type Backoff func(context.Context) error

// StaticBackoff waits for the same interval every time.
func StaticBackoff(interval time.Duration) Backoff {
	return ExponentialBackoff(interval, 1)
}

// ExponentialBackoff waits for `initialInterval * r^N` before the N-th retry.
func ExponentialBackoff(initialInterval time.Duration, r float64) Backoff {
	interval := initialInterval
	return func(ctx context.Context) error {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			interval = time.Duration(float64(interval) * r)
			return nil
		}
	}
}

// Blocking calls f until it returns nil or an error not wrapping ErrRetry.
//
// f is called once without waiting. When ctx is done while backing off,
// the last value of f is returned with an error wrapping both of ctx.Err() and
// the last error of f.
func Blocking[T any](ctx context.Context, b Backoff, f func() (T, error)) (T, error) {
	for {
		last, err := f()
		if err == nil || !errors.Is(err, ErrRetry) {
			return last, err
		}
		if berr := b(ctx); berr != nil {
			return last, fmt.Errorf("%w (last error: %w)", berr, err)
		}
	}
}
