//go:build !windows

package envdetect

func consoleOutputCodePage() (uint32, error) {
	return 0, nil
}
