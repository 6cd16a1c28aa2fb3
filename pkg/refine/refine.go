// Package refine implements the play list filter pipeline.
//
// Given a list of straights, a winners list and an optional exclude list,
// Refine keeps only straights that box-match a winner, removes any that
// box-match an excluded entry, and optionally drops exact duplicates. The
// result is always a subsequence of the input straights in original order.
package refine

import (
	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/errors"
	"github.com/ajxudir/playrefine/pkg/source"
	"github.com/ajxudir/playrefine/pkg/straights"
	"github.com/ajxudir/playrefine/pkg/verbose"
)

// Options controls the optional pipeline steps.
//
// Fields:
//   - Dedupe: Remove exact duplicate straights, keeping the first occurrence
type Options struct {
	Dedupe bool
}

// Stats holds the observability counters of a run.
//
// Fields:
//   - InputCount: Straights parsed from the input
//   - WinnersCount: Distinct winner boxes
//   - KeptAfterWinners: Straights left after the keep step
//   - KeptAfterExclude: Straights left after the exclude step (before dedupe)
type Stats struct {
	InputCount       int
	WinnersCount     int
	KeptAfterWinners int
	KeptAfterExclude int
}

// Result is the outcome of Refine.
//
// Fields:
//   - Straights: The final play list in input order
//   - Stats: Step counters
//   - ExcludeCount: Distinct exclude boxes (0 when no exclude list was given)
type Result struct {
	Straights    []string
	Stats        Stats
	ExcludeCount int
}

// Outcome classifies the result for display and exit codes.
//
// Returns:
//   - string: constants.OutcomeKept when straights remain, constants.OutcomeEmpty otherwise
func (r *Result) Outcome() string {
	if len(r.Straights) == 0 {
		return constants.OutcomeEmpty
	}
	return constants.OutcomeKept
}

// Refine runs the full pipeline.
//
// It performs the following operations:
//   - Step 1: Folds fullwidth digits to ASCII and extracts straights; fails with NoStraightsError if none
//   - Step 2: Reads winners and parses boxes; fails with SourceReadError or NoWinnersError
//   - Step 3: Reads exclude and parses boxes; an empty set disables the exclude step
//   - Step 4: Keeps straights whose box is a winner
//   - Step 5: Drops straights whose box is excluded
//   - Step 6: Removes exact duplicates when opts.Dedupe is set
//
// Parameters:
//   - straightsText: Free-form text holding the straights to filter
//   - winners: Source of the keep-only list (required)
//   - exclude: Source of the removal list (may be source.None())
//   - opts: Optional step switches
//
// Returns:
//   - *Result: The final list and counters
//   - error: *errors.NoStraightsError, *errors.NoWinnersError or *errors.SourceReadError
func Refine(straightsText string, winners, exclude source.Source, opts Options) (*Result, error) {
	text := source.NormalizeText(straightsText)
	input := straights.Extract(text)
	if len(input) == 0 {
		return nil, &errors.NoStraightsError{}
	}
	verbose.StepCounts("parse", len(input))
	if leftover := straights.CountDigits(text) - len(input)*straights.Width; leftover > 0 {
		verbose.DigitsIgnored(leftover)
	}

	winnerBoxes, err := readBoxes(constants.RoleWinners, winners)
	if err != nil {
		return nil, err
	}
	if winnerBoxes.Len() == 0 {
		nw := &errors.NoWinnersError{}
		if !winners.IsNone() {
			nw.Source = winners.Describe()
		}
		return nil, nw
	}

	excludeBoxes, err := readBoxes(constants.RoleExclude, exclude)
	if err != nil {
		return nil, err
	}

	kept := KeepWinners(input, winnerBoxes)
	verbose.StepCounts("keep", len(kept))

	final := DropExcluded(kept, excludeBoxes)
	verbose.StepCounts("exclude", len(final))

	stats := Stats{
		InputCount:       len(input),
		WinnersCount:     winnerBoxes.Len(),
		KeptAfterWinners: len(kept),
		KeptAfterExclude: len(final),
	}

	if opts.Dedupe {
		final = Dedupe(final)
		verbose.StepCounts("dedupe", len(final))
	}

	return &Result{
		Straights:    final,
		Stats:        stats,
		ExcludeCount: excludeBoxes.Len(),
	}, nil
}

// readBoxes reads a source and parses its boxes.
//
// Parameters:
//   - role: Input role for error messages
//   - src: The source to read
//
// Returns:
//   - straights.BoxSet: Distinct boxes (empty for an absent source)
//   - error: *errors.SourceReadError when the source cannot be read
func readBoxes(role string, src source.Source) (straights.BoxSet, error) {
	text, err := src.Read()
	if err != nil {
		return nil, errors.NewSourceReadError(role, src.Describe(), err)
	}
	verbose.SourceRead(role, src.Describe(), len(text))
	return straights.ParseBoxes(text), nil
}
