package straights

import "slices"

// BoxSet is an unordered, deduplicated set of boxes.
type BoxSet map[Box]struct{}

// NewBoxSet returns a set holding the given boxes.
func NewBoxSet(boxes ...Box) BoxSet {
	s := make(BoxSet, len(boxes))
	for _, b := range boxes {
		s.Add(b)
	}
	return s
}

// ParseBoxes extracts every straight from text and collects their boxes.
//
// Order and duplicates in text are irrelevant; "1-7-4-8-8" and "84781"
// contribute the same box. Text without straights yields an empty set.
//
// Parameters:
//   - text: Free-form winners or exclude text
//
// Returns:
//   - BoxSet: The set of distinct boxes found (never nil)
func ParseBoxes(text string) BoxSet {
	found := Extract(text)
	s := make(BoxSet, len(found))
	for _, straight := range found {
		// Extract only ever yields five ASCII digits.
		if b, err := Normalize(straight); err == nil {
			s.Add(b)
		}
	}
	return s
}

// Add inserts b into the set.
func (s BoxSet) Add(b Box) {
	s[b] = struct{}{}
}

// Contains reports whether b is in the set. A nil set contains nothing.
func (s BoxSet) Contains(b Box) bool {
	_, ok := s[b]
	return ok
}

// Len returns the number of distinct boxes.
func (s BoxSet) Len() int {
	return len(s)
}

// Sorted returns the boxes in ascending digit order.
func (s BoxSet) Sorted() []Box {
	out := make([]Box, 0, len(s))
	for b := range s {
		out = append(out, b)
	}
	slices.SortFunc(out, Box.Compare)
	return out
}
