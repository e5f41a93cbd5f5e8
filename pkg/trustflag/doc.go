// Package trustflag manages the per-user host security setting that gates
// programmatic access to a document's macro project.
//
// The setting lives in a persistent store shared with the host application
// and the user, so every mutation is transactional: the prior value is
// captured first, the mutation is reverted on teardown, and the revert is
// verified with a re-read. Revert and verify problems are reported as
// advisories, never as failures of the run itself.
package trustflag
