// Package testutil provides shared test utilities for playrefine packages.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// redirect points *stream at a pipe until the returned function is called.
//
// The pipe is drained in the background so fn can write more than the pipe
// buffer holds. The returned function restores *stream and yields everything
// written in between.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - stream: &os.Stdout or &os.Stderr
//
// Returns:
//   - func() string: Restores the stream and returns the captured text
func redirect(t *testing.T, stream **os.File) func() string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}

	captured := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		captured <- buf.String()
	}()

	previous := *stream
	*stream = w
	return func() string {
		*stream = previous
		_ = w.Close()
		return <-captured
	}
}

// CaptureStdout runs fn and returns what it printed to stdout.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	restore := redirect(t, &os.Stdout)
	fn()
	return restore()
}

// CaptureStderr runs fn and returns what it printed to stderr, where
// warnings and the text-mode stats line go.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	restore := redirect(t, &os.Stderr)
	fn()
	return restore()
}

// CaptureOutput runs fn and returns stdout and stderr separately, so tests
// can check that the play list and the notices land on the right stream.
//
// Returns:
//   - stdout: All content written to stdout during fn execution
//   - stderr: All content written to stderr during fn execution
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	restoreOut := redirect(t, &os.Stdout)
	restoreErr := redirect(t, &os.Stderr)
	fn()
	stderr = restoreErr()
	stdout = restoreOut()
	return stdout, stderr
}

// WithStdin runs fn with os.Stdin replaced by a pipe holding input, as when
// a generator is piped into `playrefine refine -s -`.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - input: Content fn will read from stdin
//   - fn: Function to execute
func WithStdin(t *testing.T, input string, fn func()) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	go func() {
		_, _ = io.WriteString(w, input)
		_ = w.Close()
	}()

	previous := os.Stdin
	os.Stdin = r
	defer func() {
		os.Stdin = previous
		_ = r.Close()
	}()

	fn()
}
