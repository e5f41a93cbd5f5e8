package olehost

import (
	"fmt"

	"github.com/oleworks/vbactl/pkg/doctype"
)

// CodeSharingViolation is the host error code reported when the document is
// already open in another process (the HRESULT of ERROR_SHARING_VIOLATION).
const CodeSharingViolation uint32 = 0x80070020

// HostError carries a failure reported by the automation host, preserving the
// host's error code for diagnostics.
type HostError struct {
	Cause error
	App   doctype.App
	Op    string
	Code  uint32
}

func (e *HostError) Error() string {
	res := fmt.Sprintf("%s: %s failed", e.App, e.Op)
	if e.Code != 0 {
		res = fmt.Sprintf("%s (0x%08X)", res, e.Code)
	}

	if e.Cause != nil {
		res = fmt.Sprintf("%s: %v", res, e.Cause)
	}

	return res
}

func (e *HostError) Unwrap() error {
	return e.Cause
}

// InUse reports whether the host's error code indicates the document is open
// elsewhere. The pre-flight lock probe is best-effort, so the host can still
// lose this race.
func (e *HostError) InUse() bool {
	return e.Code == CodeSharingViolation
}
