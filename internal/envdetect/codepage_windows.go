//go:build windows

package envdetect

import "golang.org/x/sys/windows"

// consoleOutputCodePage returns the code page the attached console renders output with.
func consoleOutputCodePage() (uint32, error) {
	return windows.GetConsoleOutputCP()
}
