//go:build !windows

package filelock

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// probeExclusive approximates the exclusive-open probe with a non-blocking
// flock. Advisory locks are the closest equivalent on these platforms; they
// conflict with other flock holders, including ones in the same process on a
// different descriptor.
func probeExclusive(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("exclusive open: %w", err)
	}
	defer f.Close() //nolint:errcheck // Best-effort close; Close also drops the flock.

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		return fmt.Errorf("flock: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_UN); err != nil {
		return fmt.Errorf("release: %w", err)
	}

	return nil
}
