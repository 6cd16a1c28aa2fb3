package source

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Decode converts raw file bytes into text.
//
// It performs the following operations:
//   - Step 1: Honors a UTF-8 or UTF-16 (LE/BE) byte order mark, stripping it
//   - Step 2: Treats BOM-less input as UTF-8
//   - Step 3: Applies NormalizeText to drop undecodable bytes and fold digits
//
// Parameters:
//   - b: Raw bytes from an upload, file or stream
//
// Returns:
//   - string: Decoded text; never fails
func Decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	// BOMOverride falls back to transform.Nop, leaving BOM-less bytes as-is
	// so invalid sequences can be dropped rather than replaced.
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), b)
	if err != nil {
		out = b
	}
	return NormalizeText(string(out))
}

// NormalizeText cleans text before extraction.
//
// Invalid UTF-8 and replacement characters are removed, and fullwidth forms
// such as "０８９４９" are folded to their ASCII equivalents.
//
// Parameters:
//   - s: Text from any source
//
// Returns:
//   - string: Cleaned text
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, string(utf8.RuneError), "")

	folded, _, err := transform.String(width.Fold, s)
	if err != nil {
		return s
	}
	return folded
}
