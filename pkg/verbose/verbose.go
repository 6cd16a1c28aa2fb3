// Package verbose provides debug logging with documentation references.
//
// Messages are written through a zerolog console logger so every line is
// prefixed with its level ("DBG ..."). Logging is off until Enable is called.
package verbose

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
	logger            = newLogger(os.Stderr, false)
)

// newLogger builds the console logger used for debug output.
//
// Timestamps are omitted to keep the output diff-friendly; colour is off so
// redirected output stays plain text.
//
// Parameters:
//   - w: Destination writer
//   - on: Whether debug messages should be emitted
//
// Returns:
//   - zerolog.Logger: Configured logger
func newLogger(w io.Writer, on bool) zerolog.Logger {
	level := zerolog.Disabled
	if on {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(cw).Level(level)
}

// rebuild recreates the logger from the current state. Caller holds mu.
func rebuild() {
	logger = newLogger(writer, enabled)
}

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
	rebuild()
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
	rebuild()
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
		rebuild()
	}
}

// current returns the logger with proper locking for internal use.
func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Printf prints a formatted verbose message if enabled.
//
// A trailing newline in format is dropped; the console writer adds its own.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	l := current()
	l.Debug().Msgf(strings.TrimRight(format, "\n"), args...)
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	l := current()
	l.Debug().Msg(msg)
}

// Infof prints a formatted informational verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	l := current()
	l.Debug().Msgf(format, args...)
}

// DocRef represents a documentation reference for a specific topic.
//
// Fields:
//   - Topic: A human-readable name for the documentation topic
//   - DocPath: The relative path to the documentation file or section
//   - Hint: A brief description of what the documentation covers
type DocRef struct {
	Topic   string
	DocPath string
	Hint    string
}

// Common documentation references.
var docRefs = map[string]DocRef{
	"config": {
		Topic:   "Configuration",
		DocPath: "docs/configuration.md",
		Hint:    "See configuration guide for YAML schema and options",
	},
	"sources": {
		Topic:   "Input Sources",
		DocPath: "docs/configuration.md#sources",
		Hint:    "Winners and exclude lists may be files or pasted text",
	},
	"output": {
		Topic:   "Output Formats",
		DocPath: "docs/cli.md#output",
		Hint:    "table, text, json, csv and xml are supported",
	},
	"cli": {
		Topic:   "CLI Reference",
		DocPath: "docs/cli.md",
		Hint:    "See all available commands and flags",
	},
}

// WithDocRef prints a verbose message with a documentation reference if enabled.
//
// Unknown topics print the message alone.
//
// Parameters:
//   - topic: The documentation topic key (e.g., "config", "sources")
//   - message: The main message to print
func WithDocRef(topic, message string) {
	l := current()
	ev := l.Debug()
	if ref, ok := docRefs[strings.ToLower(topic)]; ok {
		ev = ev.Str("doc", ref.DocPath).Str("hint", ref.Hint)
	}
	ev.Msg(message)
}

// ConfigLoaded logs which config file was loaded if enabled.
//
// Parameters:
//   - path: The file path to the configuration file that was loaded
func ConfigLoaded(path string) {
	l := current()
	l.Debug().Str("path", path).Msg("Config loaded")
}

// SourceRead logs that an input source was materialized.
//
// Parameters:
//   - role: Which input was read ("straights", "winners", "exclude")
//   - source: Human description of the source
//   - size: Number of bytes of decoded text
func SourceRead(role, source string, size int) {
	l := current()
	l.Debug().Str("role", role).Str("source", source).Int("bytes", size).Msg("Source read")
}

// StraightDropped logs a straight that was skipped because it could not be
// reduced to a box.
//
// Parameters:
//   - straight: The offending value
//   - reason: Why it was dropped
func StraightDropped(straight, reason string) {
	l := current()
	l.Debug().Str("straight", straight).Str("reason", reason).Msg("Straight dropped")
}

// StepCounts logs the size of the list after a pipeline step.
//
// Parameters:
//   - step: Step name ("parse", "keep", "exclude", "dedupe")
//   - count: Number of straights after the step
func StepCounts(step string, count int) {
	l := current()
	l.Debug().Str("step", step).Int("count", count).Msg("Pipeline step")
}

// DigitsIgnored logs digits in the straights input that did not complete a straight.
//
// Parameters:
//   - count: Number of leftover digits
func DigitsIgnored(count int) {
	l := current()
	l.Debug().Int("digits", count).Msg("Leftover digits ignored")
}
