//go:build !windows

package regstore

// New returns the platform store. These platforms have no registry (and no
// automation host either), so runs get a process-local in-memory store.
//
//nolint:ireturn // Platform-selected implementation.
func New() Store {
	return NewMemStore()
}
