// Package fdpath resolves the filesystem path associated with an open file.
//
// Operating systems keep track of the path a file was opened under, but the
// standard library only exposes the name passed to os.Open, which may be
// relative or already out of date. This package asks the kernel directly,
// using the one mechanism each platform provides: the /proc/self/fd symlink
// table on Linux, the F_GETPATH fcntl on macOS, and GetFinalPathNameByHandle
// on Windows. Exactly one strategy is compiled per target.
//
// # Basic Usage
//
// Resolve the path of an open *os.File:
//
//	f, err := os.CreateTemp("", "report-*.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	path, err := fdpath.Path(f)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(path) // e.g. /tmp/report-1234.txt
//
// The Wrap function provides the same capability as a method on a small
// wrapper type, for callers that pass file handles around:
//
//	h := fdpath.Wrap(f)
//	path, err := h.Path()
//
// Callers holding a raw descriptor or handle rather than an *os.File can use
// FromFd directly.
//
// # Platform Behavior
//
// The resolved path is a snapshot of what the kernel associates with the
// descriptor at the moment of the call. No two platforms agree on the edge
// cases, and this package reports what the OS reports rather than papering
// over the differences:
//
//   - Linux reads the target of /proc/self/fd/<n>. Renames are tracked by
//     the kernel, so the result stays current across moves within a mount.
//     A deleted file reports its last path with a " (deleted)" suffix,
//     which is returned verbatim. Descriptors with no backing path (pipes,
//     sockets, eventfds) report ErrNotExist.
//   - macOS issues fcntl(fd, F_GETPATH). The kernel reports EBADF both for
//     a closed descriptor and for a valid descriptor with no vnode path
//     (such as a pipe); both surface as ErrClosed.
//   - Windows queries the final DOS-form path of the handle. The system
//     decorates the result with the \\?\ verbatim prefix (or \\?\UNC\ for
//     network paths); the decoration is stripped before returning.
//
// On any other platform, resolution fails with ErrUnsupported.
//
// # Errors
//
// Failures are returned as a *ResolveError wrapping the underlying OS
// error, classified so the standard sentinels work with errors.Is:
//
//	path, err := fdpath.Path(f)
//	if errors.Is(err, fdpath.ErrClosed) {
//		// handle was closed (or never valid)
//	}
//
// The raw OS error remains reachable through the chain via errors.As for
// callers that need the exact errno or Windows error code.
//
// # Staleness
//
// A resolved path is only guaranteed correct at the instant of resolution.
// The file may be moved, renamed, or deleted immediately after the call
// returns, and nothing invalidates the returned string when that happens.
// This is an inherent property of the underlying OS queries, not a defect;
// callers that need a live view must re-resolve.
package fdpath
