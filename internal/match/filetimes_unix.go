//go:build !windows

package match

import (
	"time"

	"golang.org/x/sys/unix"
)

// setFileTimes sets the file's access and modification times to ts. POSIX
// filesystems expose no API for rewriting the birth time; the modification
// time is the authoritative timestamp media indexers read on these platforms.
func setFileTimes(path string, ts time.Time) error {
	spec := unix.NsecToTimespec(ts.UnixNano())
	return unix.UtimesNano(path, []unix.Timespec{spec, spec})
}
