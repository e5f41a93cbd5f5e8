// Package vbasession pairs an automation host instance with one open
// document and guarantees both are torn down on every exit path.
//
// A session that fails to open never leaks a host process: a launched host
// whose document open fails is quit before the error is returned. Close is
// idempotent and best-effort, attempting every teardown step and reporting
// failures as advisory teardown errors.
package vbasession
