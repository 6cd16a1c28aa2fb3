package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ajxudir/playrefine/pkg/config"
	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/errors"
	"github.com/ajxudir/playrefine/pkg/output"
	"github.com/ajxudir/playrefine/pkg/refine"
	"github.com/ajxudir/playrefine/pkg/source"
	"github.com/ajxudir/playrefine/pkg/verbose"
	"github.com/ajxudir/playrefine/pkg/warnings"
	"github.com/spf13/cobra"
)

var (
	refineStraightsFlag     string
	refineStraightsTextFlag string
	refineWinnersFlag       string
	refineWinnersTextFlag   string
	refineExcludeFlag       string
	refineExcludeTextFlag   string
	refineUniqueFlag        bool
	refineOutputFlag        string
	refineFileFlag          string
	refineDownloadFlag      bool
	refineConfigFlag        string
)

var refineFunc = refine.Refine

var refineCmd = &cobra.Command{
	Use:   "refine [straights...]",
	Short: "Keep straights that box-match a winner, minus excluded boxes",
	Long: `Build the final play list.

Straights are read from --straights (a file, or - for stdin), --straights-text
or the positional arguments. Any format works: 08949, 0-8-9-4-9, CSV or one per
line. Every run of five digits is one straight.

A straight is kept when its digits, in any order, match a winners entry, and
dropped when they match an exclude entry. Kept straights keep their original
order and formatting. A file always wins over pasted text.`,
	Example: `  playrefine refine -s straights.txt -w winners.csv
  playrefine refine --straights-text "08949 09489 70438" --winners-text 9-4-8-9-0
  generator | playrefine refine -s - -w winners.csv -x exclude.txt -u -o text`,
	RunE: runRefine,
}

func init() {
	refineCmd.Flags().StringVarP(&refineStraightsFlag, "straights", "s", "", "Straights file (- for stdin)")
	refineCmd.Flags().StringVar(&refineStraightsTextFlag, "straights-text", "", "Straights pasted as text")
	refineCmd.Flags().StringVarP(&refineWinnersFlag, "winners", "w", "", "Winners file (.txt or .csv, - for stdin)")
	refineCmd.Flags().StringVar(&refineWinnersTextFlag, "winners-text", "", "Winners pasted as text")
	refineCmd.Flags().StringVarP(&refineExcludeFlag, "exclude", "x", "", "Exclude file (.txt or .csv, - for stdin)")
	refineCmd.Flags().StringVar(&refineExcludeTextFlag, "exclude-text", "", "Exclude list pasted as text")
	refineCmd.Flags().BoolVarP(&refineUniqueFlag, "unique", "u", false, "Remove exact duplicate straights")
	refineCmd.Flags().StringVarP(&refineOutputFlag, "output", "o", "", "Output format: table, text, json, csv, xml (default: table)")
	refineCmd.Flags().StringVarP(&refineFileFlag, "file", "f", "", "Also write the final list to this file")
	refineCmd.Flags().BoolVar(&refineDownloadFlag, "download", false, "Write the final list to "+constants.DefaultPlayListFile+" (see output.file_name)")
	refineCmd.Flags().StringVarP(&refineConfigFlag, "config", "c", "", "Config file path")
}

// runRefine executes the refine command.
//
// It performs the following operations:
//   - Step 1: Loads configuration and resolves the output format
//   - Step 2: Reads the straights and resolves the winners and exclude sources
//   - Step 3: Runs the filter pipeline
//   - Step 4: Prints the stats line and the final list, then saves it if requested
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Straights given as positional arguments
//
// Returns:
//   - error: Input errors from the pipeline, ExitConfigError on bad config,
//     or a silent ExitNoResult when nothing remained
func runRefine(cmd *cobra.Command, args []string) error {
	workDir, _ := os.Getwd()
	cfg, err := loadConfigFunc(refineConfigFlag, workDir)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	format, err := resolveOutputFormat(cmd, cfg)
	if err != nil {
		return err
	}

	if err := checkStdinUse(cfg); err != nil {
		return err
	}

	straightsText, err := readStraights(cfg, args)
	if err != nil {
		return err
	}

	winners := resolveSource(cfg, refineWinnersFlag, refineWinnersTextFlag, cfg.Sources.Winners)
	exclude := resolveSource(cfg, refineExcludeFlag, refineExcludeTextFlag, cfg.Sources.Exclude)

	opts := refine.Options{Dedupe: cfg.Dedupe}
	if cmd.Flags().Changed("unique") {
		opts.Dedupe = refineUniqueFlag
	}
	verbose.Infof("Refining with winners from %s, exclude from %s, dedupe=%v", winners.Describe(), exclude.Describe(), opts.Dedupe)

	res, err := refineFunc(straightsText, winners, exclude, opts)
	if err != nil {
		return err
	}

	if err := printRefineResult(res, format); err != nil {
		return err
	}

	if err := savePlayList(cfg, res); err != nil {
		return err
	}

	if res.Outcome() == constants.OutcomeEmpty {
		verbose.Infof("Exit code %d: no straights remained", errors.ExitNoResult)
		return errors.NewSilentExit(errors.ExitNoResult)
	}
	return nil
}

// resolveOutputFormat picks the --output flag, else the configured format.
//
// Returns:
//   - output.Format: The format to print with
//   - error: ExitFailure for an unknown format name
func resolveOutputFormat(cmd *cobra.Command, cfg *config.Config) (output.Format, error) {
	value := cfg.Output.Format
	if cmd.Flags().Changed("output") {
		value = refineOutputFlag
	}
	if value == "" {
		return output.FormatTable, nil
	}
	if !output.IsValidFormat(value) {
		return "", errors.NewExitErrorf(errors.ExitFailure, "unknown output format %q (use table, text, json, csv or xml)", value)
	}
	return output.ParseFormat(value), nil
}

// checkStdinUse rejects more than one input reading from stdin.
//
// Winners and exclude are checked after the config fallback is applied, so a
// configured "-" counts too.
func checkStdinUse(cfg *config.Config) error {
	count := 0
	for _, p := range []string{
		refineStraightsFlag,
		inputPath(refineWinnersFlag, refineWinnersTextFlag, cfg.Sources.Winners),
		inputPath(refineExcludeFlag, refineExcludeTextFlag, cfg.Sources.Exclude),
	} {
		if p == constants.StdinPath {
			count++
		}
	}
	if count > 1 {
		return errors.NewExitErrorf(errors.ExitFailure, "only one input can read from stdin (-)")
	}
	return nil
}

// resolveSource builds the source for one file-or-paste input pair.
//
// A file wins over pasted text; with neither, the configured fallback path is
// used. The path "-" reads stdin.
//
// Parameters:
//   - cfg: Loaded configuration (paths resolve against its working directory)
//   - path: File flag value
//   - text: Paste flag value
//   - fallback: Configured default path, may be empty
//
// Returns:
//   - source.Source: The input, possibly source.None()
func resolveSource(cfg *config.Config, path, text, fallback string) source.Source {
	path = inputPath(path, text, fallback)

	var src source.Source
	if path == constants.StdinPath {
		src = source.Reader("stdin", os.Stdin)
	} else {
		src = source.Prefer(cfg.ResolvePath(path), text)
	}
	return src.WithMaxSize(cfg.GetMaxFileSize())
}

// inputPath returns the file path an input will read: the flag value, or the
// configured fallback when neither a path nor text was given.
func inputPath(path, text, fallback string) string {
	if path == "" && text == "" {
		return fallback
	}
	return path
}

// readStraights returns the raw straights text.
//
// Precedence: --straights, then --straights-text, then positional arguments.
// An absent input yields "" so the pipeline reports no straights.
//
// Returns:
//   - string: The straights text
//   - error: *errors.SourceReadError when the file or stdin cannot be read
func readStraights(cfg *config.Config, args []string) (string, error) {
	text := refineStraightsTextFlag
	if text == "" && len(args) > 0 {
		text = strings.Join(args, "\n")
	}

	src := resolveSource(cfg, refineStraightsFlag, text, "")
	if src.IsNone() {
		return "", nil
	}

	straightsText, err := src.Read()
	if err != nil {
		return "", errors.NewSourceReadError(constants.RoleStraights, src.Describe(), err)
	}
	verbose.SourceRead(constants.RoleStraights, src.Describe(), len(straightsText))
	return straightsText, nil
}

// statsLine formats the one-line run summary.
//
// The last figure is the length of the final list, so it reflects --unique.
func statsLine(res *refine.Result) string {
	return fmt.Sprintf("Input straights: %d | Winners parsed (as boxes): %d | Kept after winners filter: %d | Final kept after exclude: %d",
		res.Stats.InputCount, res.Stats.WinnersCount, res.Stats.KeptAfterWinners, len(res.Straights))
}

// printRefineResult prints the result in the requested format.
//
// Table output prints the stats line and a numbered table to stdout. Text
// output prints only the straights to stdout and the stats line to stderr.
// Structured formats print a single document to stdout.
//
// Parameters:
//   - res: The pipeline result
//   - format: Output format
//
// Returns:
//   - error: When writing a structured document fails
func printRefineResult(res *refine.Result, format output.Format) error {
	if output.IsStructuredFormat(format) {
		return output.WriteRefineResult(os.Stdout, format, output.NewRefineResult(res))
	}

	empty := res.Outcome() == constants.OutcomeEmpty

	if format == output.FormatText {
		fmt.Fprintln(os.Stderr, statsLine(res))
		if empty {
			warnings.Warn(constants.MsgNoResult)
			return nil
		}
		fmt.Println(output.FormatPlayList(res.Straights))
		return nil
	}

	fmt.Printf("%s %s\n", constants.IconSuccess, statsLine(res))
	fmt.Println()
	fmt.Println("Final Play List")
	if empty {
		fmt.Printf("%s  %s\n", constants.IconWarn, constants.MsgNoResult)
		return nil
	}
	output.WriteRefineTable(os.Stdout, res.Straights)
	return nil
}

// savePlayList writes the final list to --file, output.file and --download targets.
//
// Nothing is written when the final list is empty.
//
// Parameters:
//   - cfg: Loaded configuration
//   - res: The pipeline result
//
// Returns:
//   - error: When a file cannot be written
func savePlayList(cfg *config.Config, res *refine.Result) error {
	var targets []string
	switch {
	case refineFileFlag != "":
		targets = append(targets, cfg.ResolvePath(refineFileFlag))
	case cfg.Output.File != "":
		targets = append(targets, cfg.ResolvePath(cfg.Output.File))
	}
	if refineDownloadFlag {
		if p := cfg.PlayListPath(); len(targets) == 0 || targets[0] != p {
			targets = append(targets, p)
		}
	}

	if len(targets) == 0 {
		return nil
	}
	if len(res.Straights) == 0 {
		verbose.Info("Final list is empty; nothing saved")
		return nil
	}

	for _, path := range targets {
		if err := output.WritePlayListFile(path, res.Straights); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s Saved %d straights to %s\n", constants.IconCheckmarkBox, len(res.Straights), path)
	}
	return nil
}
