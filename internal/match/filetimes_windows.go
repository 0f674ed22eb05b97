//go:build windows

package match

import (
	"time"

	"golang.org/x/sys/windows"
)

// setFileTimes sets the file's creation and last-write times to ts. The
// handle is opened with FILE_WRITE_ATTRIBUTES only so file contents and
// permissions stay untouched.
func setFileTimes(path string, ts time.Time) error {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	handle, err := windows.CreateFile(
		pathPtr,
		windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(handle)

	ft := windows.NsecToFiletime(ts.UnixNano())
	return windows.SetFileTime(handle, &ft, nil, &ft)
}
