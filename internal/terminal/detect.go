// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"

	"golang.org/x/term"
)

// EnvNoColor disables styled output when set to a non-empty value.
const EnvNoColor = "NO_COLOR"

// fder is implemented by *os.File and other descriptor-backed writers.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is backed by a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled reports whether styled output should be written to w.
func ColorEnabled(w io.Writer, getenv func(string) string) bool {
	if getenv != nil && getenv(EnvNoColor) != "" {
		return false
	}
	return IsTerminal(w)
}
