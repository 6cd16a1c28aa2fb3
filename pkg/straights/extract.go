package straights

import (
	"regexp"
	"strings"
)

// Width is the number of digits in a straight.
const Width = 5

// straightRE matches five digits, each pair separated by any (possibly empty)
// run of non-digits. Matches never overlap, so every match consumes exactly
// five digits and scanning resumes right after the fifth one.
var straightRE = regexp.MustCompile(`(\d)\D*?(\d)\D*?(\d)\D*?(\d)\D*?(\d)`)

// Extract returns the straights found in text, in left-to-right order.
//
// It performs the following operations:
//   - Step 1: Trims surrounding whitespace and returns nil for empty text
//   - Step 2: Finds every non-overlapping five-digit match
//   - Step 3: Joins the five captured digits of each match, dropping separators
//
// Leftover digits that cannot complete a straight are ignored.
//
// Only ASCII digits match. Callers fold fullwidth digits first
// (source.NormalizeText), so "０８９４９" is returned as the ASCII straight
// "08949" rather than in its original characters.
//
// Parameters:
//   - text: Free-form text (lines, CSV, dashed groups, ...)
//
// Returns:
//   - []string: Extracted straights in order of occurrence; nil when none were found
func Extract(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	matches := straightRE.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.Join(m[1:Width+1], ""))
	}
	return out
}

// CountDigits returns the number of ASCII decimal digits in text.
//
// refine.Refine compares it with the extracted straights to log leftover digits.
func CountDigits(text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			n++
		}
	}
	return n
}
