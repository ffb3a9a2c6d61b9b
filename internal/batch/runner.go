// Package batch executes a plan's actions under a shared concurrency ceiling.
// Each action retries independently, and a failure is confined to the action
// that raised it: the rest of the batch keeps running.
package batch

import (
	"context"
	"sync"

	"github.com/vk/stargridgo/internal/limiter"
	"github.com/vk/stargridgo/internal/plan"
	"github.com/vk/stargridgo/internal/retry"
)

// Summary tallies the terminal outcome of every action in a batch.
type Summary struct {
	Succeeded int
	Failed    int
}

// Runner drives a batch of actions. Policy's OnRetry hook is managed by the
// runner and forwarded to Observer; Observer may be nil.
type Runner struct {
	Concurrency int
	Policy      retry.Policy
	Observer    Observer
}

// Run executes all actions and blocks until every one of them has reached a
// terminal outcome. Per-action failures are reported through the summary and
// the observer, not as an error; the returned error is reserved for a runner
// that cannot start at all.
func (r Runner) Run(ctx context.Context, actions []plan.Action) (Summary, error) {
	lim, err := limiter.New(r.Concurrency)
	if err != nil {
		return Summary{}, err
	}

	obs := r.observer()
	outcomes := make([]error, len(actions))

	var wg sync.WaitGroup
	for i, action := range actions {
		wg.Add(1)
		go func(i int, action plan.Action) {
			defer wg.Done()
			err := lim.Run(ctx, func() error {
				return r.execute(ctx, action)
			})
			outcomes[i] = err
			if err != nil {
				obs.Failed(action.Label, err)
			} else {
				obs.Succeeded(action.Label)
			}
		}(i, action)
	}
	wg.Wait()

	var summary Summary
	for _, err := range outcomes {
		if err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary, nil
}

func (r Runner) execute(ctx context.Context, action plan.Action) error {
	policy := r.Policy
	policy.OnRetry = func(err error, attempt int) {
		r.observer().Retrying(action.Label, err, attempt)
	}
	return retry.Do(ctx, policy, action.Run)
}

func (r Runner) observer() Observer {
	if r.Observer != nil {
		return r.Observer
	}
	return nopObserver{}
}
