//go:build windows

package fdpath

import (
	"strings"

	"golang.org/x/sys/windows"
)

// pathForFd asks the kernel for the final normalized path of the open
// handle, in DOS form (drive letters). The system decorates the result
// with the \\?\ verbatim prefix, which is an artifact of the call rather
// than part of the path; it is stripped before returning.
func pathForFd(fd uintptr) (string, error) {
	buf := make([]uint16, windows.MAX_PATH)
	for {
		n, err := windows.GetFinalPathNameByHandle(windows.Handle(fd), &buf[0], uint32(len(buf)), 0)
		if err != nil {
			return "", err
		}
		if int(n) < len(buf) {
			return stripVerbatimPrefix(windows.UTF16ToString(buf[:n])), nil
		}
		// n is the required buffer size, terminating NUL included.
		buf = make([]uint16, n)
	}
}

// stripVerbatimPrefix removes the \\?\ decoration from a resolved path.
// Network paths are decorated as \\?\UNC\server\share and fold back to
// \\server\share.
func stripVerbatimPrefix(path string) string {
	if rest, ok := strings.CutPrefix(path, `\\?\UNC\`); ok {
		return `\\` + rest
	}
	if rest, ok := strings.CutPrefix(path, `\\?\`); ok {
		return rest
	}
	return path
}
