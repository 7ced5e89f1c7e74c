//go:build darwin

package fdpath

import (
	"bytes"
	"unsafe"

	"golang.org/x/sys/unix"
)

// pathForFd asks the kernel for the path of the vnode behind the
// descriptor using the F_GETPATH fcntl. The kernel writes a NUL-terminated
// path of at most PathMax bytes into the buffer.
//
// F_GETPATH reports EBADF both for a closed descriptor and for a valid
// descriptor with no vnode path (such as a pipe), so those two conditions
// are indistinguishable here.
func pathForFd(fd uintptr) (string, error) {
	buf := make([]byte, unix.PathMax)
	if _, err := unix.FcntlInt(fd, unix.F_GETPATH, int(uintptr(unsafe.Pointer(&buf[0])))); err != nil {
		return "", err
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}
