package trustflag_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oleworks/vbactl/pkg/doctype"
	"github.com/oleworks/vbactl/pkg/regstore"
	"github.com/oleworks/vbactl/pkg/trustflag"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

const testVersion = "16.0"

func TestKeyPath(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		`Software\Microsoft\Office\16.0\Excel\Security`,
		trustflag.KeyPath(doctype.Excel, "16.0"),
	)
	require.Equal(t,
		`Software\Microsoft\Office\15.0\PowerPoint\Security`,
		trustflag.KeyPath(doctype.PowerPoint, "15.0"),
	)
}

func TestEnsureAlreadyEnabled(t *testing.T) {
	t.Parallel()

	store := regstore.NewMemStore()
	path := trustflag.KeyPath(doctype.Excel, testVersion)
	require.NoError(t, store.Write(path, trustflag.ValueName, 1))

	tx := trustflag.New(store, doctype.Excel, testVersion)
	require.NoError(t, tx.Ensure(false))
	require.True(t, tx.Enabled())
	require.False(t, tx.Modified())

	// Nothing was written, so there is nothing to revert or verify.
	require.NoError(t, tx.Revert())

	note, err := tx.Verify()
	require.NoError(t, err)
	require.Empty(t, note)

	val, ok, err := store.Read(path, trustflag.ValueName)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(1), val)

	state := tx.State()
	require.True(t, state.ExistedBeforeRun)
	require.Equal(t, uint32(1), state.CapturedValue)
	require.True(t, state.Enabled)
	require.False(t, state.ModifiedByRun)
	require.False(t, state.Reverted)
}

func TestEnsureRequired(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		seed     func(t *testing.T, store *regstore.MemStore, path string)
		contains string
	}{
		"absent value": {
			seed:     func(*testing.T, *regstore.MemStore, string) {},
			contains: "is not set",
		},
		"disabled value": {
			seed: func(t *testing.T, store *regstore.MemStore, path string) {
				t.Helper()
				require.NoError(t, store.Write(path, trustflag.ValueName, 0))
			},
			contains: "is 0",
		},
	}
	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := regstore.NewMemStore()
			path := trustflag.KeyPath(doctype.Word, testVersion)
			tc.seed(t, store, path)

			tx := trustflag.New(store, doctype.Word, testVersion)
			err := tx.Ensure(false)
			require.ErrorIs(t, err, vbaerrors.ErrTrustSettingRequired)
			require.ErrorContains(t, err, tc.contains)
			require.False(t, tx.Enabled())
			require.False(t, tx.Modified())
		})
	}
}

func TestEnsureWriteFailed(t *testing.T) {
	t.Parallel()

	store := regstore.NewMemStore()
	store.WriteErr = errors.New("access denied")

	tx := trustflag.New(store, doctype.Excel, testVersion)
	err := tx.Ensure(true)
	require.ErrorIs(t, err, vbaerrors.ErrTrustSettingWriteFailed)
	require.False(t, tx.Enabled())
	require.False(t, tx.Modified())
}

func TestEnsureReadFailed(t *testing.T) {
	t.Parallel()

	store := regstore.NewMemStore()
	store.ReadErr = errors.New("store unavailable")

	tx := trustflag.New(store, doctype.Excel, testVersion)
	err := tx.Ensure(true)
	require.Error(t, err)
	require.ErrorContains(t, err, "capture trust setting")
	require.NotErrorIs(t, err, vbaerrors.ErrTrustSettingRequired)
	require.NotErrorIs(t, err, vbaerrors.ErrTrustSettingWriteFailed)
}

func TestRevertRestoresExistingValue(t *testing.T) {
	t.Parallel()

	store := regstore.NewMemStore()
	path := trustflag.KeyPath(doctype.Excel, testVersion)
	require.NoError(t, store.Write(path, trustflag.ValueName, 0))

	tx := trustflag.New(store, doctype.Excel, testVersion)
	require.NoError(t, tx.Ensure(true))
	require.True(t, tx.Enabled())
	require.True(t, tx.Modified())

	val, ok, err := store.Read(path, trustflag.ValueName)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(1), val)

	require.NoError(t, tx.Revert())

	val, ok, err = store.Read(path, trustflag.ValueName)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(0), val)

	note, err := tx.Verify()
	require.NoError(t, err)
	require.Empty(t, note)

	state := tx.State()
	require.True(t, state.ExistedBeforeRun)
	require.Equal(t, uint32(0), state.CapturedValue)
	require.False(t, state.Enabled)
	require.True(t, state.ModifiedByRun)
	require.True(t, state.Reverted)
	require.Empty(t, state.VerifyMismatch)
}

func TestRevertDeletesCreatedValue(t *testing.T) {
	t.Parallel()

	store := regstore.NewMemStore()
	path := trustflag.KeyPath(doctype.PowerPoint, testVersion)

	tx := trustflag.New(store, doctype.PowerPoint, testVersion)
	require.NoError(t, tx.Ensure(true))
	require.True(t, tx.Modified())

	require.NoError(t, tx.Revert())

	_, ok, err := store.Read(path, trustflag.ValueName)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, store.Len())

	note, err := tx.Verify()
	require.NoError(t, err)
	require.Empty(t, note)
}

func TestRevertIdempotent(t *testing.T) {
	t.Parallel()

	store := regstore.NewMemStore()
	tx := trustflag.New(store, doctype.Excel, testVersion)
	require.NoError(t, tx.Ensure(true))

	require.NoError(t, tx.Revert())
	require.NoError(t, tx.Revert())
	require.Equal(t, 0, store.Len())
}

func TestRevertFailure(t *testing.T) {
	t.Parallel()

	store := regstore.NewMemStore()
	tx := trustflag.New(store, doctype.Excel, testVersion)
	require.NoError(t, tx.Ensure(true))

	store.DeleteErr = errors.New("access denied")

	err := tx.Revert()
	require.ErrorIs(t, err, vbaerrors.ErrTeardown)
	require.False(t, tx.State().Reverted)

	// The setting is still in place, which the verify pass reports.
	store.DeleteErr = nil
	note, verr := tx.Verify()
	require.NoError(t, verr)
	require.Contains(t, note, "still present")
}

func TestVerifyMismatch(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		interfere func(t *testing.T, store *regstore.MemStore, path string)
		seed      func(t *testing.T, store *regstore.MemStore, path string)
		contains  string
	}{
		"recreated after delete": {
			seed: func(*testing.T, *regstore.MemStore, string) {},
			interfere: func(t *testing.T, store *regstore.MemStore, path string) {
				t.Helper()
				require.NoError(t, store.Write(path, trustflag.ValueName, 1))
			},
			contains: "still present (value 1), expected absent",
		},
		"rewritten after restore": {
			seed: func(t *testing.T, store *regstore.MemStore, path string) {
				t.Helper()
				require.NoError(t, store.Write(path, trustflag.ValueName, 0))
			},
			interfere: func(t *testing.T, store *regstore.MemStore, path string) {
				t.Helper()
				require.NoError(t, store.Write(path, trustflag.ValueName, 1))
			},
			contains: "is 1, expected 0",
		},
		"deleted after restore": {
			seed: func(t *testing.T, store *regstore.MemStore, path string) {
				t.Helper()
				require.NoError(t, store.Write(path, trustflag.ValueName, 0))
			},
			interfere: func(t *testing.T, store *regstore.MemStore, path string) {
				t.Helper()
				require.NoError(t, store.Delete(path, trustflag.ValueName))
			},
			contains: "is absent, expected 0",
		},
	}
	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := regstore.NewMemStore()
			path := trustflag.KeyPath(doctype.Excel, testVersion)
			tc.seed(t, store, path)

			tx := trustflag.New(store, doctype.Excel, testVersion)
			require.NoError(t, tx.Ensure(true))
			require.NoError(t, tx.Revert())

			// Simulate the host rewriting the setting on its own shutdown.
			tc.interfere(t, store, path)

			note, err := tx.Verify()
			require.NoError(t, err)
			require.Contains(t, note, tc.contains)
			require.Equal(t, note, tx.State().VerifyMismatch)
		})
	}
}

func TestVerifyReadFailed(t *testing.T) {
	t.Parallel()

	store := regstore.NewMemStore()
	tx := trustflag.New(store, doctype.Excel, testVersion)
	require.NoError(t, tx.Ensure(true))
	require.NoError(t, tx.Revert())

	store.ReadErr = errors.New("store unavailable")

	_, err := tx.Verify()
	require.ErrorIs(t, err, vbaerrors.ErrTeardown)
}
