//go:build !linux

package envdetect

func kernelRelease() (string, error) {
	return "", nil
}
