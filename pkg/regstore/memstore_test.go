package regstore_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oleworks/vbactl/pkg/regstore"
)

const (
	testPath = `Software\Microsoft\Office\16.0\Excel\Security`
	testName = "AccessVBOM"
)

func TestMemStore(t *testing.T) {
	t.Parallel()

	s := regstore.NewMemStore()

	_, ok, err := s.Read(testPath, testName)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Write(testPath, testName, 1))

	val, ok, err := s.Read(testPath, testName)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(1), val)
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.Delete(testPath, testName))

	_, ok, err = s.Read(testPath, testName)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, s.Len())

	// Deleting an absent value is a no-op.
	require.NoError(t, s.Delete(testPath, testName))
}

func TestMemStoreInjectedErrors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	s := regstore.NewMemStore()
	s.ReadErr = errBoom
	s.WriteErr = errBoom
	s.DeleteErr = errBoom

	_, _, err := s.Read(testPath, testName)
	require.ErrorIs(t, err, errBoom)
	require.ErrorIs(t, s.Write(testPath, testName, 1), errBoom)
	require.ErrorIs(t, s.Delete(testPath, testName), errBoom)
}
