package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vk/stargridgo/internal/apierr"
)

// failingOp returns an operation that fails with the given errors in order,
// then succeeds forever. It counts every invocation.
func failingOp(attempts *int, failures ...error) func(context.Context) error {
	i := 0
	return func(context.Context) error {
		*attempts++
		if i < len(failures) {
			err := failures[i]
			i++
			return err
		}
		return nil
	}
}

func statusErr(status int) error {
	return &apierr.Error{Op: "create polyanet", Status: status}
}

func TestDo_ExhaustsBudgetOnPersistent503(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	attempts := 0
	op := func(context.Context) error {
		attempts++
		return statusErr(503)
	}

	// --- Act ---
	err := Do(context.Background(), Policy{Retries: 3}, op)

	// --- Assert ---
	require.Equal(t, 4, attempts, "retries=3 must mean exactly 4 attempts")
	require.ErrorIs(t, err, ErrExhausted)
	status, ok := apierr.StatusCode(err)
	require.True(t, ok, "the last failure must survive the exhausted wrapping")
	require.Equal(t, 503, status)
}

func TestDo_FatalStatusFailsOnFirstAttempt(t *testing.T) {
	t.Parallel()

	attempts := 0
	notFound := statusErr(404)

	err := Do(context.Background(), Policy{Retries: 5}, func(context.Context) error {
		attempts++
		return notFound
	})

	require.Equal(t, 1, attempts, "a 404 must never be retried")
	require.ErrorIs(t, err, notFound)
	require.NotErrorIs(t, err, ErrExhausted)
}

func TestDo_RecoversAfterTransientFailures(t *testing.T) {
	t.Parallel()

	attempts := 0
	op := failingOp(&attempts, statusErr(500), statusErr(500))

	err := Do(context.Background(), Policy{Retries: 5}, op)

	require.NoError(t, err)
	require.Equal(t, 3, attempts, "two 500s then success must take exactly 3 attempts")
}

func TestDo_ZeroRetriesMeansSingleAttempt(t *testing.T) {
	t.Parallel()

	attempts := 0
	op := failingOp(&attempts, errors.New("connection reset"))

	err := Do(context.Background(), Policy{Retries: 0}, op)

	require.Equal(t, 1, attempts)
	require.ErrorIs(t, err, ErrExhausted)
}

func TestDo_NetworkFaultsAreRetried(t *testing.T) {
	t.Parallel()

	attempts := 0
	op := failingOp(&attempts, errors.New("dial tcp: connection refused"))

	err := Do(context.Background(), Policy{Retries: 2}, op)

	require.NoError(t, err)
	require.Equal(t, 2, attempts)
}

func TestDo_OnRetryObservesEveryScheduledAttempt(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var observed []int
	policy := Policy{
		Retries: 3,
		OnRetry: func(err error, attempt int) {
			require.Error(t, err)
			observed = append(observed, attempt)
		},
	}

	// --- Act ---
	err := Do(context.Background(), policy, func(context.Context) error {
		return statusErr(429)
	})

	// --- Assert ---
	require.ErrorIs(t, err, ErrExhausted)
	require.Equal(t, []int{1, 2, 3}, observed, "the hook must see 1-based upcoming attempt numbers")
}

func TestDo_ContextCancellationCutsBackoffShort(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A base delay this large would stall the test for minutes if the sleep
	// ignored cancellation.
	policy := Policy{Retries: 5, BaseDelay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	op := func(context.Context) error {
		attempts++
		if attempts == 1 {
			cancel()
		}
		return statusErr(503)
	}

	// --- Act ---
	start := time.Now()
	err := Do(ctx, policy, op)

	// --- Assert ---
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, attempts)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestTransient_Classification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"plain error has no status", errors.New("boom"), true},
		{"api error without status", &apierr.Error{Op: "x", Err: errors.New("timeout")}, true},
		{"429 rate limit", statusErr(429), true},
		{"500", statusErr(500), true},
		{"503", statusErr(503), true},
		{"599", statusErr(599), true},
		{"400", statusErr(400), false},
		{"403", statusErr(403), false},
		{"404", statusErr(404), false},
		{"301", statusErr(301), false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, Transient(tc.err))
		})
	}
}

func TestBackoffDelay_StaysWithinAttemptBounds(t *testing.T) {
	t.Parallel()

	base := 100 * time.Millisecond
	for attempt := 0; attempt < 5; attempt++ {
		limit := base * (1 << attempt)
		for i := 0; i < 200; i++ {
			d := backoffDelay(base, attempt)
			require.GreaterOrEqual(t, d, time.Duration(0))
			require.LessOrEqual(t, d, limit)
		}
	}
}
