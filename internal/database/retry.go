package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avast/retry-go"
)

// DefaultMaxRetryAttempts is the number of retries after the first failed attempt.
const DefaultMaxRetryAttempts uint = 2

const maxRetryDelay = 2 * time.Second

// WithRetry runs fn, retrying transient failures with capped exponential backoff.
// Not-found results and context cancellation are never retried.
func WithRetry(ctx context.Context, maxRetryAttempts uint, fn func() error) error {
	return retry.Do(
		func() error {
			if err := fn(); err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(maxRetryAttempts+1),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(maxRetryDelay),
		retry.LastErrorOnly(true),
	)
}

func isRetryableError(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
