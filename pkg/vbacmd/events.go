package vbacmd

import (
	"github.com/oleworks/vbactl/pkg/doctype"
)

type (
	// Sent when the file's type has been resolved.
	EventResolved struct {
		App doctype.App
	}

	// Sent when the pre-flight lock probe has passed.
	EventPreflightPassed struct{}

	// Sent when the automation session is open.
	EventSessionOpened struct {
		HostVersion string
	}

	// Sent when the trust setting has been ensured.
	EventTrustEnsured struct {
		Modified bool
	}

	// Sent when the requested operation has finished, with the error that
	// failed it if it did.
	EventOperationDone struct {
		Err error
	}

	// Sent after each teardown step, failed or not.
	EventTeardownStep struct {
		Err  error
		Name string
	}
)
