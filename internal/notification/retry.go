package notification

import (
	"context"
	"math/rand"
	"time"
)

// RetryPolicy bounds delivery attempts with exponential backoff. Jitter up
// to half the computed delay keeps retries from synchronizing when a burst
// of events fails against the same mail server.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

func NewRetryPolicy(maxAttempts int, backoff time.Duration) RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     backoff,
	}
}

// Do runs fn until it succeeds, attempts run out, or the context is
// cancelled. The last error is returned when all attempts fail.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	var err error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if attempt == p.MaxAttempts {
			break
		}

		delay := p.delay(attempt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return err
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	delay := p.Backoff << (attempt - 1)
	if delay <= 0 {
		return 0
	}

	return delay + time.Duration(rand.Int63n(int64(delay)/2+1))
}
