package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vk/stargridgo/internal/batch"
	"github.com/vk/stargridgo/internal/config"
	"github.com/vk/stargridgo/internal/ctxlog"
	"github.com/vk/stargridgo/internal/megaverse"
	"github.com/vk/stargridgo/internal/plan"
	"github.com/vk/stargridgo/internal/retry"
)

// Run executes the configured run profile: fetch the goal map, build the
// plan, and drive the batch to completion (or just list the plan on a dry
// run). Per-action failures end up in the summary, not in the returned error.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	profile, err := a.mission.SelectRun(a.config.RunName)
	if err != nil {
		return err
	}
	settings := a.effectiveSettings(profile)
	logger.Debug("Run profile resolved.",
		"run", settings.Name,
		"concurrency", settings.Concurrency,
		"retries", settings.Retries,
		"base_delay", settings.BaseDelay,
		"dry_run", settings.DryRun,
	)

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
		defer a.closeHealthcheckServer()
	}

	client, err := megaverse.NewClient(megaverse.Config{
		BaseURL:        a.mission.Megaverse.BaseURL,
		CandidateID:    a.mission.Megaverse.CandidateID,
		RequestTimeout: a.mission.Megaverse.RequestTimeout,
	})
	if err != nil {
		return err
	}
	defer client.CloseIdleConnections()

	logger.Info("Fetching goal map...", "base_url", a.mission.Megaverse.BaseURL)
	goal, err := a.fetchGoal(ctx, client, settings)
	if err != nil {
		return fmt.Errorf("failed to fetch goal map: %w", err)
	}

	g, actions, err := plan.Build(goal, client)
	if err != nil {
		return fmt.Errorf("failed to build plan: %w", err)
	}
	logger.Info("Plan built.", "grid_height", g.Height, "grid_width", g.Width, "actions", len(actions))

	if settings.DryRun {
		a.listPlan(actions)
		return nil
	}
	if len(actions) == 0 {
		logger.Warn("No actions found in plan, execution not required.")
		return nil
	}

	logger.Info("🚀 Starting concurrent execution...", "actions", len(actions), "workers", settings.Concurrency)
	started := time.Now()

	runner := batch.Runner{
		Concurrency: settings.Concurrency,
		Policy: retry.Policy{
			Retries:   settings.Retries,
			BaseDelay: settings.BaseDelay,
		},
		Observer: &logObserver{logger: logger},
	}
	summary, err := runner.Run(ctx, actions)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	logger.Info("🏁 Execution finished.",
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"duration", time.Since(started).Round(time.Millisecond).String(),
	)
	if summary.Failed > 0 {
		logger.Warn("Some actions did not complete.", "failed", summary.Failed)
	}

	logger.Debug("App.Run method finished.")
	return nil
}

// effectiveSettings layers the CLI overrides on top of the selected profile.
func (a *App) effectiveSettings(profile *config.Run) config.Run {
	settings := *profile
	if a.config.Workers > 0 {
		settings.Concurrency = a.config.Workers
	}
	if a.config.DryRun {
		settings.DryRun = true
	}
	return settings
}

// fetchGoal retrieves the goal map under the same retry policy the actions
// use. A fetch that exhausts its budget fails the whole run.
func (a *App) fetchGoal(ctx context.Context, client *megaverse.Client, settings config.Run) ([][]string, error) {
	logger := ctxlog.FromContext(ctx)

	policy := retry.Policy{
		Retries:   settings.Retries,
		BaseDelay: settings.BaseDelay,
		OnRetry: func(err error, attempt int) {
			logger.Warn("Retrying goal map fetch.", "attempt", attempt, "error", err)
		},
	}

	var goal [][]string
	err := retry.Do(ctx, policy, func(ctx context.Context) error {
		var fetchErr error
		goal, fetchErr = client.GoalMap(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// listPlan prints the deterministic action listing without touching the API.
func (a *App) listPlan(actions []plan.Action) {
	a.logger.Info("Dry run: listing planned actions.", "count", len(actions))

	if len(actions) == 0 {
		fmt.Fprintln(a.outW, "      (nothing to create)")
		return
	}
	for _, label := range plan.Labels(actions) {
		fmt.Fprintf(a.outW, "      %s\n", label)
	}
}
