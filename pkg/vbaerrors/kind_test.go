package vbaerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		want vbaerrors.Kind
	}{
		"nil": {
			err:  nil,
			want: vbaerrors.Kind(""),
		},
		"unsupported file type": {
			err:  fmt.Errorf("%w: .xlsx", vbaerrors.ErrUnsupportedFileType),
			want: vbaerrors.KindUnsupportedFileType,
		},
		"file locked": {
			err:  vbaerrors.ErrFileLocked,
			want: vbaerrors.KindFileLocked,
		},
		"host unavailable classifies as launch failure": {
			err:  vbaerrors.ErrHostUnavailable,
			want: vbaerrors.KindHostLaunchFailed,
		},
		"document open failed": {
			err:  fmt.Errorf("%w: open rejected", vbaerrors.ErrDocumentOpenFailed),
			want: vbaerrors.KindDocumentOpenFailed,
		},
		"trust setting required": {
			err:  vbaerrors.ErrTrustSettingRequired,
			want: vbaerrors.KindTrustSettingRequired,
		},
		"deeply wrapped": {
			err:  fmt.Errorf("run: %w", fmt.Errorf("%w: disk full", vbaerrors.ErrSaveFailed)),
			want: vbaerrors.KindSaveFailed,
		},
		"outside the taxonomy": {
			err:  errors.New("boom"),
			want: vbaerrors.KindUnknown,
		},
	}
	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, vbaerrors.KindOf(tc.err))
		})
	}
}
