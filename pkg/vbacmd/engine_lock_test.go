//go:build !windows

package vbacmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/oleworks/vbactl/pkg/olehosttest"
	"github.com/oleworks/vbactl/pkg/regstore"
	"github.com/oleworks/vbactl/pkg/vbacmd"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

func TestLockedFileNeverLaunchesHost(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Book1.xlsm")
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0o600))

	holder, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)

	t.Cleanup(func() { _ = holder.Close() })

	require.NoError(t, unix.Flock(int(holder.Fd()), unix.LOCK_EX))

	t.Run("inspect", func(t *testing.T) {
		f := olehosttest.NewFactory(newTestDoc())
		e := vbacmd.New(f, regstore.NewMemStore())

		res, err := e.Inspect(path)
		require.ErrorIs(t, err, vbaerrors.ErrFileLocked)
		require.Equal(t, vbaerrors.KindFileLocked, res.Failure.Kind)
		require.False(t, res.PreflightOK)
		require.Equal(t, 0, f.LaunchCalls)
	})

	t.Run("remove", func(t *testing.T) {
		f := olehosttest.NewFactory(newTestDoc())
		e := vbacmd.New(f, regstore.NewMemStore())

		res, err := e.Remove(path, "Module1")
		require.ErrorIs(t, err, vbaerrors.ErrFileLocked)
		require.Equal(t, vbaerrors.KindFileLocked, res.Failure.Kind)
		require.Equal(t, 0, f.LaunchCalls)
	})
}
