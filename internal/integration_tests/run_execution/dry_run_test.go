package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/stargridgo/internal/app"
	"github.com/vk/stargridgo/internal/testutil"
)

// Test for: a dry run prints the deterministic plan and never calls the API.
func TestRunExecution_DryRunListsWithoutCreating(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	goal := [][]string{
		{"POLYANET", "SPACE"},
		{"BLUE_SOLOON", "RIGHT_COMETH"},
	}
	fake := testutil.NewFakeMegaverse(t, goal)

	// --- Act ---
	out, err := startRun(t, fake, `run "phase2" { dry_run = true }`,
		&app.Config{LogLevel: "error", LogFormat: "text"})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t,
		"      POLYANET @ (0,0)\n"+
			"      BLUE_SOLOON @ (1,0)\n"+
			"      RIGHT_COMETH @ (1,1)\n",
		out.String())
	require.Empty(t, fake.Created())
}

// Test for: the -dry-run flag forces listing mode over the profile setting.
func TestRunExecution_DryRunFlagOverridesProfile(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeMegaverse(t, [][]string{{"POLYANET"}})

	out, err := startRun(t, fake, `run "phase2" {}`,
		&app.Config{DryRun: true, LogLevel: "error", LogFormat: "text"})

	require.NoError(t, err)
	require.Equal(t, "      POLYANET @ (0,0)\n", out.String())
	require.Empty(t, fake.Created())
}
