//go:build linux

package fdpath

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// pathForFd reads the target of the /proc/self/fd/<n> symlink the kernel
// maintains for every open descriptor. The target is the path the kernel
// last associated with the descriptor: renames within a mount are tracked,
// and a deleted file reports its old path with a " (deleted)" suffix.
func pathForFd(fd uintptr) (string, error) {
	target, err := os.Readlink("/proc/self/fd/" + strconv.FormatUint(uint64(fd), 10))
	if err != nil {
		return "", err
	}
	// Descriptors with no path behind them report pseudo-targets like
	// "pipe:[1234]" or "anon_inode:[eventfd]" rather than a real path.
	if !strings.HasPrefix(target, "/") {
		return "", fmt.Errorf("descriptor refers to %s: %w", target, ErrNotExist)
	}
	return target, nil
}
