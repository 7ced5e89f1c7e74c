//go:build !linux && !darwin && !windows

package fdpath

// classify is a no-op on platforms where resolution is unsupported; the
// only error pathForFd produces is already a sentinel.
func classify(err error) error {
	return err
}
