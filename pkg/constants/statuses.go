// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for outcome values.
package constants

// Outcome constants describe the result of a refine run.
const (
	// OutcomeKept indicates at least one straight survived filtering.
	OutcomeKept = "kept"

	// OutcomeEmpty indicates every straight was filtered out.
	OutcomeEmpty = "empty"
)

// Input role names used in messages, logs and errors.
const (
	// RoleStraights is the list being filtered.
	RoleStraights = "straights"

	// RoleWinners is the keep-only reference list.
	RoleWinners = "winners"

	// RoleExclude is the optional removal list.
	RoleExclude = "exclude"
)

// File names.
const (
	// ConfigFileName is the per-directory configuration file.
	ConfigFileName = ".playrefine.yml"

	// DefaultPlayListFile is the default name of the downloadable final list.
	DefaultPlayListFile = "final_play_list.txt"

	// StdinPath is the path argument that selects standard input.
	StdinPath = "-"
)

// User-facing messages.
const (
	// MsgNoResult is printed when filtering leaves nothing.
	MsgNoResult = "No straights remained after filtering. Check your winners and exclude lists."

	// MsgPrompt is printed by the root command when no input was given.
	MsgPrompt = "Paste your straights (1), winners (2), and optionally exclude list (3), then run 'playrefine refine'."
)

// Icon constants for status display.
const (
	// IconSuccess indicates a successful or positive state.
	IconSuccess = "🟢"

	// IconError indicates an error or failed state.
	IconError = "❌"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconCheckmarkBox indicates successful validation.
	IconCheckmarkBox = "✅"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)
