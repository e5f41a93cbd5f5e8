//go:build !windows

package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleworks/vbactl/internal/cli"
)

func writeWorkbookStub(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Book1.xlsm")
	err := os.WriteFile(path, []byte("stub"), 0o600)
	require.NoError(t, err)

	return path
}

func TestInspectWithoutHost(t *testing.T) {
	t.Parallel()

	path := writeWorkbookStub(t)

	stdout, _, err := runRootCmd(t, "inspect", path, "-o", "json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitHostOrOpen, cli.ExitCode(err))
	assert.Contains(t, stdout, `"host_launch_failed"`)
	assert.Contains(t, stdout, `"preflightOk": true`)
}

func TestRemoveWithoutHost(t *testing.T) {
	t.Parallel()

	path := writeWorkbookStub(t)

	stdout, _, err := runRootCmd(t, "remove", path, "--module", "Module1", "-o", "text")
	require.Error(t, err)
	assert.Equal(t, cli.ExitHostOrOpen, cli.ExitCode(err))
	assert.Contains(t, stdout, "remove "+path)
	assert.Contains(t, stdout, "error (host_launch_failed):")
}

func TestInspectMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.xlsm")

	stdout, _, err := runRootCmd(t, "inspect", path, "-o", "json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidArgument, cli.ExitCode(err))
	assert.Contains(t, stdout, `"file_not_found"`)
	assert.Contains(t, stdout, `"preflightOk": false`)
}
