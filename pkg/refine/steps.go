package refine

import (
	"github.com/ajxudir/playrefine/pkg/straights"
	"github.com/ajxudir/playrefine/pkg/verbose"
)

// KeepWinners returns, in order, every straight whose box is in winners.
//
// Straights that cannot be normalized are skipped silently; they are logged
// at debug level only.
//
// Parameters:
//   - input: Straights in original order
//   - winners: Boxes to keep
//
// Returns:
//   - []string: Ordered subsequence of input (never nil)
func KeepWinners(input []string, winners straights.BoxSet) []string {
	kept := make([]string, 0, len(input))
	for _, s := range input {
		box, err := straights.Normalize(s)
		if err != nil {
			verbose.StraightDropped(s, err.Error())
			continue
		}
		if winners.Contains(box) {
			kept = append(kept, s)
		}
	}
	return kept
}

// DropExcluded removes straights whose box is in exclude.
//
// An empty exclude set returns kept unchanged.
//
// Parameters:
//   - kept: Straights surviving the keep step
//   - exclude: Boxes to remove
//
// Returns:
//   - []string: Ordered subsequence of kept
func DropExcluded(kept []string, exclude straights.BoxSet) []string {
	if exclude.Len() == 0 {
		return kept
	}

	out := make([]string, 0, len(kept))
	for _, s := range kept {
		box, err := straights.Normalize(s)
		if err != nil {
			verbose.StraightDropped(s, err.Error())
			continue
		}
		if !exclude.Contains(box) {
			out = append(out, s)
		}
	}
	return out
}

// Dedupe removes exact string duplicates, keeping the first occurrence.
//
// Permutations are not duplicates: "17488" and "71488" both survive.
//
// Parameters:
//   - list: Straights in order
//
// Returns:
//   - []string: Ordered list without repeats (never nil)
func Dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Match groups final straights under the winner box they matched.
//
// Fields:
//   - Box: The shared box
//   - Straights: Straights with that box, in first-seen order
type Match struct {
	Box       straights.Box
	Straights []string
}

// GroupByBox groups straights by box, ordering groups by first appearance.
//
// Parameters:
//   - list: Straights in order
//
// Returns:
//   - []Match: One entry per distinct box
func GroupByBox(list []string) []Match {
	index := make(map[straights.Box]int)
	var groups []Match
	for _, s := range list {
		box, err := straights.Normalize(s)
		if err != nil {
			continue
		}
		i, ok := index[box]
		if !ok {
			i = len(groups)
			index[box] = i
			groups = append(groups, Match{Box: box})
		}
		groups[i].Straights = append(groups[i].Straights, s)
	}
	return groups
}
