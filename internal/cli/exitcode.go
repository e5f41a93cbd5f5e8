package cli

import (
	"errors"

	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

// ErrInvalidArgument marks command-line usage errors so they map to a
// distinct exit status from runtime failures.
var ErrInvalidArgument = errors.New("invalid argument")

// Exit statuses, grouped by failure stage. Earlier stages win: a file that
// is both missing and of an unsupported type reports the type error.
const (
	ExitOK              = 0
	ExitError           = 1
	ExitInvalidArgument = 2
	ExitUnsupportedType = 3
	ExitFileLocked      = 4
	ExitTrustSetting    = 5
	ExitHostOrOpen      = 6
	ExitModuleOp        = 7
)

// ExitCode maps an error returned by command execution to the process exit
// status. Unclassified errors report ExitError.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, vbaerrors.ErrFileNotFound):
		return ExitInvalidArgument
	case errors.Is(err, vbaerrors.ErrUnsupportedFileType):
		return ExitUnsupportedType
	case errors.Is(err, vbaerrors.ErrFileLocked):
		return ExitFileLocked
	case errors.Is(err, vbaerrors.ErrTrustSettingRequired),
		errors.Is(err, vbaerrors.ErrTrustSettingWriteFailed):
		return ExitTrustSetting
	case errors.Is(err, vbaerrors.ErrHostLaunchFailed),
		errors.Is(err, vbaerrors.ErrDocumentOpenFailed):
		return ExitHostOrOpen
	case errors.Is(err, vbaerrors.ErrModuleNotFound),
		errors.Is(err, vbaerrors.ErrModuleProtected),
		errors.Is(err, vbaerrors.ErrRemovalFailed),
		errors.Is(err, vbaerrors.ErrSaveFailed):
		return ExitModuleOp
	default:
		return ExitError
	}
}
