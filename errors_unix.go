//go:build linux || darwin

package fdpath

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// classify fills the gap syscall.Errno.Is leaves: EBADF means the
// descriptor is not open. ENOENT, EACCES/EPERM, and ENOTSUP/ENOSYS already
// match the exported sentinels through the errno's own Is method.
func classify(err error) error {
	if errors.Is(err, unix.EBADF) {
		return fmt.Errorf("%w: %w", ErrClosed, err)
	}
	return err
}
