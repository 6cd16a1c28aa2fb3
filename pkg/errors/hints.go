package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "no straights detected",
		Hint:       "Section 1 is empty",
		Resolution: "Paste at least one 5-digit straight (e.g. 08949 or 0-8-9-4-9) with --straights or --straights-text",
	},
	{
		Pattern:    "no valid 5-digit winners",
		Hint:       "Winners list is empty",
		Resolution: "Upload or paste a winners list with --winners or --winners-text",
	},
	{
		Pattern:    "input too large",
		Hint:       "Source file exceeds the size limit",
		Resolution: "Raise sources.max_file_size in .playrefine.yml",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Run 'playrefine config --validate' to check it, or 'playrefine config --init' to create one",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file permissions or run with appropriate privileges",
	},
	{
		Pattern:    "is a directory",
		Hint:       "A directory was given where a file was expected",
		Resolution: "Pass the path of a .txt or .csv file",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// EnhanceErrorWithHint appends a hint line to the error message when one is known.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: The error message, followed by "\n  Hint: ..." if a hint matched
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}
	hint := GetHint(err)
	if hint == "" {
		return err.Error()
	}
	return err.Error() + "\n  Hint: " + hint
}
