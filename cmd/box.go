package cmd

import (
	"os"
	"strings"

	"github.com/ajxudir/playrefine/pkg/errors"
	"github.com/ajxudir/playrefine/pkg/output"
	"github.com/ajxudir/playrefine/pkg/source"
	"github.com/ajxudir/playrefine/pkg/straights"
	"github.com/spf13/cobra"
)

var boxCmd = &cobra.Command{
	Use:   "box <straight>...",
	Short: "Show the box key of each straight",
	Long: `Print the box of every straight found in the arguments.

Two straights match when their boxes are equal, so this shows why a straight
was kept or excluded.`,
	Example: `  playrefine box 71488 1-7-4-8-8 08949`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runBox,
}

// runBox prints a STRAIGHT / BOX / KEY table for the arguments.
//
// Returns:
//   - error: *errors.NoStraightsError when no five-digit run is found
func runBox(cmd *cobra.Command, args []string) error {
	found := straights.Extract(source.NormalizeText(strings.Join(args, "\n")))
	if len(found) == 0 {
		return &errors.NoStraightsError{Source: "arguments"}
	}

	output.WriteBoxTable(os.Stdout, found)
	return nil
}
