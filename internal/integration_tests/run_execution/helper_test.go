package integration_tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/vk/stargridgo/internal/app"
	"github.com/vk/stargridgo/internal/hcl_adapter"
	"github.com/vk/stargridgo/internal/testutil"
)

// startRun wires a mission file to the fake server, builds the App, and
// executes it end to end, returning the combined log/output buffer and the
// run error.
func startRun(t *testing.T, f *testutil.FakeMegaverse, profile string, cfg *app.Config) (*testutil.SafeBuffer, error) {
	t.Helper()

	mission := fmt.Sprintf(`
megaverse {
  base_url     = %q
  candidate_id = "cand-123"
}

%s
`, f.Server.URL, profile)
	cfg.MissionPath = testutil.WriteMission(t, t.TempDir(), mission)

	buf := &testutil.SafeBuffer{}
	a := app.NewApp(buf, cfg, hcl_adapter.NewLoader())
	return buf, a.Run(context.Background())
}
