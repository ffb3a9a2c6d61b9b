// Package retry implements the backoff-retry executor: it wraps a single
// asynchronous operation with bounded retry and jittered exponential delay.
//
// Classification is deliberately narrow. A failure is transient when it
// carries no HTTP status at all (a network-level fault), when the status is
// 429, or when the status is 500 or above. Everything else is fatal and is
// surfaced immediately without another attempt.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/vk/stargridgo/internal/apierr"
)

// ErrExhausted tags failures that stayed transient on every attempt but
// outlived the retry budget. Check for it with errors.Is.
var ErrExhausted = errors.New("retries exhausted")

// Policy configures one retried call. The attempt counter lives entirely in
// the call frame of Do, so a single Policy value is safe to share between any
// number of concurrent calls.
type Policy struct {
	// Retries is the number of re-attempts after the initial one. Zero means
	// exactly one attempt, whatever the failure looks like.
	Retries int

	// BaseDelay scales the backoff: the sleep before retry n (0-indexed) is
	// rand(0,1) * BaseDelay * 2^n.
	BaseDelay time.Duration

	// OnRetry, when set, is invoked before each backoff sleep with the failure
	// that triggered it and the 1-based number of the upcoming attempt. It is
	// a best-effort observability hook and must not block.
	OnRetry func(err error, attempt int)
}

// Do executes op immediately, then retries transient failures with jittered
// exponential backoff until op succeeds, a fatal failure is observed, the
// retry budget runs out, or ctx is canceled. Do keeps no state between calls.
func Do(ctx context.Context, policy Policy, op func(context.Context) error) error {
	for attempt := 0; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if !Transient(err) {
			return err
		}
		if attempt >= policy.Retries {
			return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempt+1, err)
		}
		// Don't schedule another attempt for an operation the caller has
		// already abandoned.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if policy.OnRetry != nil {
			policy.OnRetry(err, attempt+1)
		}
		if sleepErr := sleep(ctx, backoffDelay(policy.BaseDelay, attempt)); sleepErr != nil {
			return sleepErr
		}
	}
}

// Transient reports whether a failure is worth retrying. A missing status
// means the fault happened below HTTP; 429 and 5xx are the server asking us
// to come back later.
func Transient(err error) bool {
	status, ok := apierr.StatusCode(err)
	if !ok {
		return true
	}
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// backoffDelay computes the full-jitter exponential delay for a 0-indexed
// attempt: rand(0,1) * base * 2^attempt.
func backoffDelay(base time.Duration, attempt int) time.Duration {
	return time.Duration(math.Round(rand.Float64() * float64(base) * math.Pow(2, float64(attempt))))
}

// sleep waits out the delay, aborting early when ctx is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
