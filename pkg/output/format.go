// Package output renders refine results for the terminal, for scripts and
// for the downloadable play list.
//
// Table and text are meant for people; CSV, JSON and XML carry the same
// result as a single machine-readable document.
package output

import "strings"

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatText outputs the play list one straight per line.
	FormatText Format = "text"
	// FormatCSV outputs one row per final straight.
	FormatCSV Format = "csv"
	// FormatJSON outputs the full result document as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs the full result document as XML.
	FormatXML Format = "xml"
)

// formats lists every accepted name, in the order help text shows them.
var formats = []Format{FormatTable, FormatText, FormatJSON, FormatCSV, FormatXML}

// ParseFormat parses a format name, ignoring case and surrounding spaces.
//
// Parameters:
//   - s: Format name (e.g., "csv", " JSON ")
//
// Returns:
//   - Format: The parsed format, or FormatTable if s is not a known name
func ParseFormat(s string) Format {
	if f, ok := lookupFormat(s); ok {
		return f
	}
	return FormatTable
}

// IsValidFormat reports whether s names a known format, including "table".
func IsValidFormat(s string) bool {
	_, ok := lookupFormat(s)
	return ok
}

func lookupFormat(s string) (Format, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range formats {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// IsStructuredFormat reports whether f prints a single document (CSV, JSON
// or XML) instead of the human-oriented table or text.
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}
