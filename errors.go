package fdpath

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotExist is returned when the descriptor has no associated path:
	// the file was deleted out from under it, or the descriptor refers to
	// an anonymous object such as a pipe.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrPermission is returned when the resolving call lacks privilege to
	// read the descriptor-to-path mapping.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when the file or descriptor is closed or
	// otherwise invalid at call time.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrUnsupported is returned when the platform provides no way to
	// resolve a descriptor to a path, or the call is unavailable in the
	// current environment.
	// Re-exported from errors for convenience.
	ErrUnsupported = errors.ErrUnsupported
)

// ResolveError records a failed path resolution. It wraps the underlying
// OS error, so errors.Is matches both the exported sentinels and the raw
// errno or Windows error code.
type ResolveError struct {
	// Fd is the descriptor (or Windows handle) the resolution was
	// attempted on.
	Fd uintptr

	// Err is the underlying cause, classified against the package
	// sentinels where the OS error alone is ambiguous.
	Err error
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("fdpath: resolve fd %d: %v", e.Fd, e.Err)
}

// Unwrap returns the underlying error.
func (e *ResolveError) Unwrap() error {
	return e.Err
}
