package fdpath

import "os"

// invalidFd is the value os.File.Fd reports for a nil or closed file, and
// the value of Windows' InvalidHandle.
const invalidFd = ^uintptr(0)

// Path returns the filesystem path the operating system currently
// associates with the open file f.
//
// The result is a snapshot: the file may be moved, renamed, or deleted
// after the call returns without invalidating the string. See the package
// documentation for the per-platform edge cases. Path never closes,
// duplicates, or otherwise modifies f.
//
// A nil or closed file returns an error matching ErrClosed. A descriptor
// that has no backing path (such as a pipe) returns an error matching
// ErrNotExist, or ErrClosed on macOS where the kernel reports the two
// conditions identically.
func Path(f *os.File) (string, error) {
	return FromFd(f.Fd())
}

// FromFd resolves the path for a raw file descriptor (or, on Windows, a
// file handle). It is the low-level form of Path for callers that hold a
// descriptor outside an *os.File.
//
// The descriptor is borrowed for the duration of the call; the caller must
// keep it open until FromFd returns.
func FromFd(fd uintptr) (string, error) {
	if fd == invalidFd {
		return "", &ResolveError{Fd: fd, Err: ErrClosed}
	}
	path, err := pathForFd(fd)
	if err != nil {
		return "", &ResolveError{Fd: fd, Err: classify(err)}
	}
	return path, nil
}

// File attaches the path capability to an *os.File as a method. It borrows
// the underlying file: closing it remains the caller's responsibility, and
// the wrapper must not outlive it.
type File struct {
	inner *os.File
}

// Wrap returns a File exposing Path as a method on f.
func Wrap(f *os.File) *File {
	return &File{inner: f}
}

// Path resolves the path of the wrapped file. Equivalent to calling the
// package-level Path on the wrapped *os.File.
func (f *File) Path() (string, error) {
	return Path(f.inner)
}

// File returns the wrapped *os.File.
func (f *File) File() *os.File {
	return f.inner
}
