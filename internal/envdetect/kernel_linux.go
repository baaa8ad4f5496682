//go:build linux

package envdetect

import "golang.org/x/sys/unix"

// kernelRelease reads the running kernel release via uname(2).
func kernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
