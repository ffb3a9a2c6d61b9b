package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/stargridgo/internal/app"
	"github.com/vk/stargridgo/internal/testutil"
)

// Test for: a full run creates exactly the non-empty goal cells and reports
// the summary.
func TestRunExecution_CreatesEveryGoalObject(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	goal := [][]string{
		{"POLYANET", "SPACE", "UP_COMETH"},
		{"SPACE", "WHITE_SOLOON", "SPACE"},
		{"DOWN_COMETH", "SPACE", "POLYANET"},
	}
	fake := testutil.NewFakeMegaverse(t, goal)

	// --- Act ---
	out, err := startRun(t, fake, `
run "phase2" {
  concurrency   = 3
  retries       = 2
  base_delay_ms = 10
}
`, &app.Config{LogLevel: "info", LogFormat: "text"})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{
		"cometh (0,2) up",
		"cometh (2,0) down",
		"polyanet (0,0)",
		"polyanet (2,2)",
		"soloon (1,1) white",
	}, fake.Created())

	logs := out.String()
	require.Contains(t, logs, "🚀 Starting concurrent execution...")
	require.Contains(t, logs, "🏁 Execution finished.")
	require.Contains(t, logs, "succeeded=5")
	require.Contains(t, logs, "failed=0")
}

// Test for: the run never exceeds the profile's concurrency ceiling.
func TestRunExecution_HonorsConcurrencyCeiling(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	row := make([]string, 12)
	for i := range row {
		row[i] = "POLYANET"
	}
	fake := testutil.NewFakeMegaverse(t, [][]string{row})

	// --- Act ---
	_, err := startRun(t, fake, `
run "phase2" {
  concurrency   = 3
  base_delay_ms = 10
}
`, &app.Config{LogLevel: "error", LogFormat: "text"})

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, fake.Created(), 12)
	require.LessOrEqual(t, fake.PeakConcurrency(), 3)
}

// Test for: the -workers flag overrides the profile's concurrency.
func TestRunExecution_WorkersFlagOverridesProfile(t *testing.T) {
	t.Parallel()

	row := make([]string, 8)
	for i := range row {
		row[i] = "POLYANET"
	}
	fake := testutil.NewFakeMegaverse(t, [][]string{row})

	_, err := startRun(t, fake, `run "phase2" { concurrency = 8 }`,
		&app.Config{Workers: 1, LogLevel: "error", LogFormat: "text"})

	require.NoError(t, err)
	require.Len(t, fake.Created(), 8)
	require.Equal(t, 1, fake.PeakConcurrency())
}
