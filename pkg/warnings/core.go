// Package warnings routes user-facing warnings to a swappable writer.
//
// Warnings go to stderr by default so that piped output on stdout stays a
// clean play list.
package warnings

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ajxudir/playrefine/pkg/constants"
)

var (
	mu sync.RWMutex
	// warnWriter is nil until SetWarningWriter is called; nil means os.Stderr
	// as it is at write time.
	warnWriter io.Writer
)

// Warnf writes formatted warning messages to the configured warning writer.
//
// It performs the following operations:
//   - Acquires a read lock to safely access the warning writer
//   - Formats the message using the provided format string and arguments
//   - Writes the formatted message to the configured writer
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(WarningWriter(), format, args...)
}

// Warn writes msg on its own line behind the warning icon.
//
// Parameters:
//   - msg: The warning text, without trailing newline
func Warn(msg string) {
	Warnf("%s  %s\n", constants.IconWarn, msg)
}

// WarningWriter returns the currently configured warning writer.
//
// Returns:
//   - io.Writer: The configured writer, or the current os.Stderr when none is set
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	if warnWriter == nil {
		return os.Stderr
	}
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Saves the previous warning writer for restoration
//   - Sets the new warning writer (nil restores the os.Stderr default)
//   - Returns a function that restores the previous writer when called
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	warnWriter = w

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
