//go:build windows

package filelock

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// probeExclusive opens the file with a zero share mode, which fails with a
// sharing violation while any other process has the file open.
func probeExclusive(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encode path: %w", err)
	}

	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		0, // no sharing
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return fmt.Errorf("exclusive open: %w", err)
	}

	if err := windows.CloseHandle(h); err != nil {
		return fmt.Errorf("release: %w", err)
	}

	return nil
}
