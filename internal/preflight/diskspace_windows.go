//go:build windows

package preflight

import "golang.org/x/sys/windows"

func freeSpace(path string) (uint64, bool) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, false
	}
	var available, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &available, &total, &free); err != nil {
		return 0, false
	}
	return available, true
}
