//go:build windows

package regstore

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// WindowsStore is a [Store] over the current user's registry hive. Office
// security flags are per-user, so HKCU is the only root this tool touches.
type WindowsStore struct {
	root registry.Key
}

// NewWindowsStore returns a [Store] rooted at HKEY_CURRENT_USER.
func NewWindowsStore() *WindowsStore {
	return &WindowsStore{root: registry.CURRENT_USER}
}

func (s *WindowsStore) Read(path, name string) (uint32, bool, error) {
	k, err := registry.OpenKey(s.root, path, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("open key %q: %w", path, err)
	}
	defer k.Close() //nolint:errcheck // Read-only handle.

	val, _, err := k.GetIntegerValue(name)
	if errors.Is(err, registry.ErrNotExist) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("read value %q\\%q: %w", path, name, err)
	}

	return uint32(val), true, nil
}

func (s *WindowsStore) Write(path, name string, val uint32) error {
	k, _, err := registry.CreateKey(s.root, path, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create key %q: %w", path, err)
	}
	defer k.Close() //nolint:errcheck // Value flushed by SetDWordValue.

	err = k.SetDWordValue(name, val)
	if err != nil {
		return fmt.Errorf("write value %q\\%q: %w", path, name, err)
	}

	return nil
}

func (s *WindowsStore) Delete(path, name string) error {
	k, err := registry.OpenKey(s.root, path, registry.SET_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("open key %q: %w", path, err)
	}
	defer k.Close() //nolint:errcheck // Deletion flushed by DeleteValue.

	err = k.DeleteValue(name)
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("delete value %q\\%q: %w", path, name, err)
	}

	return nil
}
