//go:build windows

package regstore

// New returns the platform store: the current user's registry hive.
//
//nolint:ireturn // Platform-selected implementation.
func New() Store {
	return NewWindowsStore()
}
