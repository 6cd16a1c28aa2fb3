package straights

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMalformed is returned by Normalize for anything that is not exactly
// five ASCII digits.
var ErrMalformed = errors.New("malformed straight")

// Box is the order-insensitive identity of a straight: its digits sorted
// ascending. Boxes are comparable and can be used as map keys.
type Box [Width]uint8

// Normalize converts a straight into its box.
//
// It performs the following operations:
//   - Step 1: Rejects input that is not exactly Width bytes long
//   - Step 2: Converts each byte to its digit value, rejecting non-digits
//   - Step 3: Sorts the digit values ascending
//
// Parameters:
//   - s: A straight such as "08949"
//
// Returns:
//   - Box: The sorted digits, e.g. (0,4,8,9,9)
//   - error: ErrMalformed (wrapped with the input) when s is not five digits
func Normalize(s string) (Box, error) {
	var b Box
	if len(s) != Width {
		return Box{}, fmt.Errorf("%w: %q has %d characters", ErrMalformed, s, len(s))
	}
	for i := 0; i < Width; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Box{}, fmt.Errorf("%w: %q contains non-digit %q", ErrMalformed, s, c)
		}
		b[i] = c - '0'
	}
	slices.Sort(b[:])
	return b, nil
}

// String renders the box as its sorted digits, e.g. "04899".
func (b Box) String() string {
	var sb strings.Builder
	sb.Grow(Width)
	for _, d := range b {
		sb.WriteByte('0' + d)
	}
	return sb.String()
}

// Tuple renders the box as a parenthesised tuple, e.g. "(0,4,8,9,9)".
func (b Box) Tuple() string {
	parts := make([]string, Width)
	for i, d := range b {
		parts[i] = string('0' + rune(d))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Compare orders boxes lexicographically by digit.
//
// Returns:
//   - int: -1 if b sorts before other, +1 if after, 0 if equal
func (b Box) Compare(other Box) int {
	return slices.Compare(b[:], other[:])
}
