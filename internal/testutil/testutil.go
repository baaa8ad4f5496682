// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteScript writes an executable /bin/sh script with the given body and returns its path.
func WriteScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteRecorder writes an executable stub that appends one line per argument to
// logPath, followed by "env:<KEY>=<value>" lines for each of envKeys, then exits with exitCode.
func WriteRecorder(t *testing.T, dir string, name string, logPath string, exitCode int, envKeys ...string) string {
	t.Helper()
	var body strings.Builder
	fmt.Fprintf(&body, "for arg in \"$@\"; do printf '%%s\\n' \"$arg\" >> %q; done\n", logPath)
	for _, key := range envKeys {
		fmt.Fprintf(&body, "printf 'env:%s=%%s\\n' \"$%s\" >> %q\n", key, key, logPath)
	}
	fmt.Fprintf(&body, "exit %d\n", exitCode)
	return WriteScript(t, dir, name, body.String())
}

// ReadLines returns the non-empty lines of path, failing the test when it cannot be read.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// PrependPath puts dir at the front of PATH for the duration of the test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// IsolatePath replaces PATH with dir only for the duration of the test.
func IsolatePath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir)
}
