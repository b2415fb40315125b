// Package retry runs a unit of work again when it fails with a retryable error.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds the number of attempts and the delay between them.
type Policy struct {
	MaxAttempts int           // Total attempts including the first one
	BaseDelay   time.Duration // First delay before jitter, doubled on every retry
}

// NewBackOff returns the jittered exponential schedule of p bound to ctx. It
// stops after p.MaxAttempts-1 retries and never on elapsed time alone.
func NewBackOff(ctx context.Context, p Policy) backoff.BackOffContext {
	attempts := max(p.MaxAttempts, 1)

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.BaseDelay
	exp.Multiplier = 2
	exp.RandomizationFactor = 1
	exp.MaxElapsedTime = 0
	exp.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)
}

// Do calls fn until it succeeds, returns an error that shouldRetry rejects,
// or the policy runs out of attempts. The last error is returned as is.
func Do(ctx context.Context, p Policy, shouldRetry func(error) bool, fn func(attempt int) error) error {
	attempt := 0
	return backoff.Retry(func() error {
		err := fn(attempt)
		attempt++
		if err != nil && !shouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}, NewBackOff(ctx, p))
}
