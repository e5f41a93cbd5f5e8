// Package vbacmd is the engine that runs one document operation end to end:
// resolve the file's type, probe for exclusive access, open an automation
// session, ensure the trust setting, inspect or remove, and tear everything
// down again on every exit path.
//
// Runs are strictly sequential and blocking. Every external call holds the
// calling goroutine until the host or store responds, and none of them can
// be cancelled midway; a caller that needs a timeout must enforce it from
// outside the process. Teardown is an ordered chain of independent
// best-effort steps whose failures are reported as advisories and never
// replace the run's primary outcome.
package vbacmd
