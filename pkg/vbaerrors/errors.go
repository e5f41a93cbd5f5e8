package vbaerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFileType indicates the target file's extension maps to no
	// known automation host. Terminal, checked before anything else runs.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFileNotFound indicates the target file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileLocked indicates the target file is exclusively held open by
	// another process. Terminal and non-retryable; the lock holder is outside
	// this process's control.
	ErrFileLocked = errors.New("file locked")

	// ErrHostLaunchFailed indicates the automation host process could not be
	// started.
	ErrHostLaunchFailed = errors.New("host launch failed")

	// ErrHostUnavailable indicates no automation host exists on this platform.
	ErrHostUnavailable = fmt.Errorf("%w: no automation host on this platform", ErrHostLaunchFailed)

	// ErrDocumentOpenFailed indicates the host launched but could not open the
	// document. It may wrap a host-reported in-use conflict that slipped past
	// the pre-flight lock probe.
	ErrDocumentOpenFailed = errors.New("document open failed")

	// ErrTrustSettingRequired indicates programmatic macro-project access is
	// disabled and the caller did not request auto-enable.
	ErrTrustSettingRequired = errors.New("trust setting required")

	// ErrTrustSettingWriteFailed indicates the trust flag could not be written.
	ErrTrustSettingWriteFailed = errors.New("trust setting write failed")

	// ErrProjectAccessFailed indicates the document's macro project could not
	// be accessed. Non-fatal: callers degrade this to an empty project result.
	ErrProjectAccessFailed = errors.New("project access failed")

	// ErrRemovalFailed indicates the host rejected removal of a component.
	ErrRemovalFailed = errors.New("removal failed")

	// ErrSaveFailed indicates the document could not be saved after a removal.
	ErrSaveFailed = errors.New("save failed")

	// ErrModuleNotFound indicates no component matched the requested name.
	ErrModuleNotFound = errors.New("module not found")

	// ErrModuleProtected indicates the matched component is intrinsic to the
	// document's structure and cannot be removed.
	ErrModuleProtected = errors.New("module protected")

	// ErrTeardown wraps failures from best-effort teardown steps. Never fatal;
	// surfaced as advisories after the primary outcome is determined.
	ErrTeardown = errors.New("teardown")
)
