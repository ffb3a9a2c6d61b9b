package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteMission writes a mission file into dir and returns its path.
func WriteMission(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "mission.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
