//go:build !linux && !darwin && !windows

package fdpath

// pathForFd fails on platforms without a descriptor-to-path query.
func pathForFd(_ uintptr) (string, error) {
	return "", ErrUnsupported
}
