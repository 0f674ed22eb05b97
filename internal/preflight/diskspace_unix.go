//go:build !windows

package preflight

import "golang.org/x/sys/unix"

// freeSpace reports the bytes available to unprivileged callers on the
// filesystem holding path.
func freeSpace(path string) (uint64, bool) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, false
	}
	return stat.Bavail * uint64(stat.Bsize), true
}
