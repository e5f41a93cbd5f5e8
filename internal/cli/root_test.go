package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleworks/vbactl/internal/cli"
)

func runRootCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := cli.NewRootCmd("test_vbactl", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestUnsupportedFileType(t *testing.T) {
	t.Parallel()

	stdout, _, err := runRootCmd(t, "inspect", "notes.txt", "-o", "json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUnsupportedType, cli.ExitCode(err))
	assert.Contains(t, stdout, `"unsupported_file_type"`)
}

func TestInvalidUsage(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
	}{
		"inspect without file": {
			args: []string{"inspect"},
		},
		"inspect with two files": {
			args: []string{"inspect", "a.xlsm", "b.xlsm"},
		},
		"unknown flag": {
			args: []string{"inspect", "Book1.xlsm", "--frobnicate"},
		},
		"unknown output format": {
			args: []string{"inspect", "Book1.xlsm", "-o", "toml"},
		},
		"remove without module": {
			args: []string{"remove", "Book1.xlsm", "-o", "json"},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, _, err := runRootCmd(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitInvalidArgument, cli.ExitCode(err))
		})
	}
}

func TestSchemaCmd(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := runRootCmd(t, "schema")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, `"$schema"`)
	assert.Contains(t, stdout, `"runId"`)
	assert.Contains(t, stdout, `"advisories"`)
}

func TestBadLogConfig(t *testing.T) {
	t.Parallel()

	_, _, err := runRootCmd(t, "schema", "--log_format", "xml")
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}
