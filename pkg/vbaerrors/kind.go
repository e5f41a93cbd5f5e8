package vbaerrors

import (
	"errors"

	"github.com/invopop/jsonschema"
)

// Kind is the stable machine-readable name of an error class, for
// structured reporting.
type Kind string

const (
	KindUnsupportedFileType     Kind = "unsupported_file_type"
	KindFileNotFound            Kind = "file_not_found"
	KindFileLocked              Kind = "file_locked"
	KindHostLaunchFailed        Kind = "host_launch_failed"
	KindDocumentOpenFailed      Kind = "document_open_failed"
	KindTrustSettingRequired    Kind = "trust_setting_required"
	KindTrustSettingWriteFailed Kind = "trust_setting_write_failed"
	KindProjectAccessFailed     Kind = "project_access_failed"
	KindRemovalFailed           Kind = "removal_failed"
	KindSaveFailed              Kind = "save_failed"
	KindModuleNotFound          Kind = "module_not_found"
	KindModuleProtected         Kind = "module_protected"
	KindTeardown                Kind = "teardown"
	KindUnknown                 Kind = "unknown"
)

var KindEnum = []any{
	KindUnsupportedFileType,
	KindFileNotFound,
	KindFileLocked,
	KindHostLaunchFailed,
	KindDocumentOpenFailed,
	KindTrustSettingRequired,
	KindTrustSettingWriteFailed,
	KindProjectAccessFailed,
	KindRemovalFailed,
	KindSaveFailed,
	KindModuleNotFound,
	KindModuleProtected,
	KindTeardown,
	KindUnknown,
}

func (Kind) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        KindEnum,
		Title:       "Kind",
		Description: "The machine-readable error class.",
	}
}

var kindSentinels = []struct {
	err  error
	kind Kind
}{
	{ErrUnsupportedFileType, KindUnsupportedFileType},
	{ErrFileNotFound, KindFileNotFound},
	{ErrFileLocked, KindFileLocked},
	{ErrHostLaunchFailed, KindHostLaunchFailed},
	{ErrDocumentOpenFailed, KindDocumentOpenFailed},
	{ErrTrustSettingRequired, KindTrustSettingRequired},
	{ErrTrustSettingWriteFailed, KindTrustSettingWriteFailed},
	{ErrProjectAccessFailed, KindProjectAccessFailed},
	{ErrRemovalFailed, KindRemovalFailed},
	{ErrSaveFailed, KindSaveFailed},
	{ErrModuleNotFound, KindModuleNotFound},
	{ErrModuleProtected, KindModuleProtected},
	{ErrTeardown, KindTeardown},
}

// KindOf classifies err by the sentinel it wraps. Errors outside the
// taxonomy are [KindUnknown]; a nil error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	for _, s := range kindSentinels {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}

	return KindUnknown
}
