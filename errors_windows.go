//go:build windows

package fdpath

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// classify fills the gaps syscall.Errno.Is leaves on Windows: an invalid
// handle maps to ErrClosed, and the calls a filesystem driver refuses map
// to ErrUnsupported. ERROR_FILE_NOT_FOUND and ERROR_ACCESS_DENIED already
// match the exported sentinels through the errno's own Is method.
func classify(err error) error {
	switch {
	case errors.Is(err, windows.ERROR_INVALID_HANDLE):
		return fmt.Errorf("%w: %w", ErrClosed, err)
	case errors.Is(err, windows.ERROR_NOT_SUPPORTED), errors.Is(err, windows.ERROR_INVALID_FUNCTION):
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	return err
}
