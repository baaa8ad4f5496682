package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withExecute(t *testing.T, fn func(args []string, stdout io.Writer, stderr io.Writer) error) {
	t.Helper()
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = fn
}

func TestRunMainSuccess(t *testing.T) {
	withExecute(t, func([]string, io.Writer, io.Writer) error { return nil })
	var out bytes.Buffer
	called := false
	runMain([]string{"rdt-install"}, &out, &out, func(int) { called = true })
	assert.False(t, called)
	assert.Empty(t, out.String())
}

func TestRunMainSilentExit(t *testing.T) {
	withExecute(t, func([]string, io.Writer, io.Writer) error {
		return fmt.Errorf("wrapped: %w", &SilentExitError{Code: 3})
	})
	var out bytes.Buffer
	code := 0
	runMain([]string{"rdt-install"}, &out, &out, func(c int) { code = c })
	assert.Equal(t, 3, code)
	assert.Empty(t, out.String())
}

func TestRunMainChildExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
	childErr := exec.Command("sh", "-c", "exit 4").Run()
	require.Error(t, childErr)
	withExecute(t, func([]string, io.Writer, io.Writer) error { return childErr })

	var out bytes.Buffer
	code := 0
	runMain([]string{"rdt-install"}, &out, &out, func(c int) { code = c })
	assert.Equal(t, 4, code)
	assert.Empty(t, out.String())
}

func TestRunMainError(t *testing.T) {
	withExecute(t, func([]string, io.Writer, io.Writer) error { return errors.New("boom") })
	var stdout, stderr bytes.Buffer
	code := 0
	runMain([]string{"rdt-install"}, &stdout, &stderr, func(c int) { code = c })
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: boom\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestSilentExitErrorMessage(t *testing.T) {
	assert.Equal(t, "exit 2", SilentExitError{Code: 2}.Error())
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origBuild })

	Version, Commit, BuildDate = "v1.2.3", "unknown", "unknown"
	assert.Equal(t, "v1.2.3", versionString())

	Commit = "abc123"
	assert.Equal(t, "v1.2.3 (commit abc123)", versionString())

	BuildDate = "2026-01-02"
	assert.Equal(t, "v1.2.3 (commit abc123, built 2026-01-02)", versionString())
}
