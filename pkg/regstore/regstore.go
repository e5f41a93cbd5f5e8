// Package regstore abstracts the per-user hierarchical configuration store
// that holds host security flags.
//
// The store is process-external and shared: the host application and the
// human user can both rewrite values at any time. Callers must treat every
// read as a snapshot and every write as potentially racing.
package regstore

// Store reads, writes, and deletes one integer-valued flag under a
// hierarchical key path. See [MemStore] and the windows registry
// implementation for concrete stores.
type Store interface {
	// Read returns the value and whether it existed. An absent key or value
	// is (0, false, nil), not an error.
	Read(path, name string) (val uint32, ok bool, err error)
	// Write sets the value, creating the key path as needed.
	Write(path, name string, val uint32) error
	// Delete removes the value. Deleting an absent value is a no-op.
	Delete(path, name string) error
}
