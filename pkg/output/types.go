package output

import (
	"encoding/xml"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/playrefine/pkg/refine"
)

// RefineResult represents the output data for the refine command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Step counters of the run
//   - Outcome: "kept" or "empty"
//   - Straights: The final play list in input order
//   - Matches: Final straights grouped by box, in first-seen order (JSON only)
//   - MatchList: The same grouping as a list (XML only)
type RefineResult struct {
	XMLName   xml.Name               `json:"-" xml:"refineResult"`
	Summary   RefineSummary          `json:"summary" xml:"summary"`
	Outcome   string                 `json:"outcome" xml:"outcome"`
	Straights []string               `json:"straights" xml:"straights>straight"`
	Matches   *orderedmap.OrderedMap `json:"matches" xml:"-"`
	MatchList []RefineMatch          `json:"-" xml:"matches>match"`
}

// RefineSummary holds the counters reported after a run.
//
// Fields:
//   - InputCount: Straights parsed from the input
//   - WinnersCount: Distinct winner boxes
//   - ExcludeCount: Distinct exclude boxes
//   - KeptAfterWinners: Straights left after the keep step
//   - KeptAfterExclude: Straights left after the exclude step
//   - FinalCount: Straights in the final list (after optional dedupe)
type RefineSummary struct {
	InputCount       int `json:"input_count" xml:"inputCount"`
	WinnersCount     int `json:"winners_count" xml:"winnersCount"`
	ExcludeCount     int `json:"exclude_count" xml:"excludeCount"`
	KeptAfterWinners int `json:"kept_after_winners" xml:"keptAfterWinners"`
	KeptAfterExclude int `json:"kept_after_exclude" xml:"keptAfterExclude"`
	FinalCount       int `json:"final_count" xml:"finalCount"`
}

// RefineMatch is one box and the final straights that share it.
type RefineMatch struct {
	Box       string   `json:"box" xml:"box,attr"`
	Straights []string `json:"straights" xml:"straight"`
}

// NewRefineResult builds the exportable view of a refine run.
//
// It performs the following operations:
//   - Step 1: Copies the step counters into the summary
//   - Step 2: Groups the final straights by box
//   - Step 3: Fills the ordered JSON map and the XML match list from the groups
//
// Parameters:
//   - res: The pipeline result
//
// Returns:
//   - *RefineResult: Ready to pass to WriteRefineResult
func NewRefineResult(res *refine.Result) *RefineResult {
	out := &RefineResult{
		Summary: RefineSummary{
			InputCount:       res.Stats.InputCount,
			WinnersCount:     res.Stats.WinnersCount,
			ExcludeCount:     res.ExcludeCount,
			KeptAfterWinners: res.Stats.KeptAfterWinners,
			KeptAfterExclude: res.Stats.KeptAfterExclude,
			FinalCount:       len(res.Straights),
		},
		Outcome:   res.Outcome(),
		Straights: res.Straights,
		Matches:   orderedmap.New(),
		MatchList: make([]RefineMatch, 0),
	}
	if out.Straights == nil {
		out.Straights = []string{}
	}

	for _, m := range refine.GroupByBox(res.Straights) {
		key := m.Box.String()
		out.Matches.Set(key, m.Straights)
		out.MatchList = append(out.MatchList, RefineMatch{Box: key, Straights: m.Straights})
	}
	return out
}
