package cmd

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/errors"
	"github.com/ajxudir/playrefine/pkg/testutil"
)

// TestRefine_Table tests the default table output.
//
// It verifies:
//   - The stats line reports every step count
//   - Kept straights are listed in input order with their box
//   - Straights without a winner box are not listed
func TestRefine_Table(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, _, err := runCLI(t, "refine",
		"--straights-text", "08949\n09489\n70438",
		"--winners-text", "9-4-8-9-0")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Input straights: 3 | Winners parsed (as boxes): 1 | Kept after winners filter: 2 | Final kept after exclude: 2")
	assert.Contains(t, stdout, "Final Play List")
	assert.Contains(t, stdout, "1  08949     04899")
	assert.Contains(t, stdout, "2  09489     04899")
	assert.NotContains(t, stdout, "70438")
}

// TestRefine_EmptyResult tests the warning and exit code when nothing remains.
func TestRefine_EmptyResult(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, _, err := runCLI(t, "refine",
		"--straights-text", "08949\n09489\n70438",
		"--winners-text", "9-4-8-9-0",
		"--exclude-text", "9-8-9-4-0",
		"--download")
	require.Error(t, err)

	assert.Equal(t, errors.ExitNoResult, errors.GetExitCode(err))
	exitErr, ok := errors.IsExitError(err)
	require.True(t, ok)
	assert.True(t, exitErr.Silent)
	assert.Contains(t, stdout, "Final kept after exclude: 0")
	assert.Contains(t, stdout, constants.MsgNoResult)

	_, statErr := os.Stat(constants.DefaultPlayListFile)
	assert.True(t, os.IsNotExist(statErr), "empty list must not be saved")
}

// TestRefine_TextOutput tests text output with dedupe from positional arguments.
//
// It verifies:
//   - stdout holds only the straights, one per line
//   - The stats line goes to stderr and counts the deduplicated list
func TestRefine_TextOutput(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, stderr, err := runCLI(t, "refine", "-u", "-o", "text", "--winners-text", "14788", "17488", "71488", "17488")
	require.NoError(t, err)

	assert.Equal(t, "17488\n71488\n", stdout)
	assert.Contains(t, stderr, "Kept after winners filter: 3 | Final kept after exclude: 2")
}

// TestRefine_JSONOutput tests structured output.
func TestRefine_JSONOutput(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, _, err := runCLI(t, "refine", "-o", "json",
		"--straights-text", "17488 17488 08949",
		"--winners-text", "14788")
	require.NoError(t, err)

	var parsed struct {
		Summary struct {
			InputCount       int `json:"input_count"`
			KeptAfterExclude int `json:"kept_after_exclude"`
			FinalCount       int `json:"final_count"`
		} `json:"summary"`
		Outcome   string   `json:"outcome"`
		Straights []string `json:"straights"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &parsed))
	assert.Equal(t, 3, parsed.Summary.InputCount)
	assert.Equal(t, 2, parsed.Summary.FinalCount)
	assert.Equal(t, constants.OutcomeKept, parsed.Outcome)
	assert.Equal(t, []string{"17488", "17488"}, parsed.Straights)
}

// TestRefine_Files tests file inputs and saving the final list.
//
// It verifies:
//   - Winners and exclude files are read relative to the working directory
//   - A winners file wins over pasted winners text
//   - --download and --file both write the newline-joined list
func TestRefine_Files(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	testutil.WriteFile(t, dir, "straights.txt", testutil.SampleStraights)
	testutil.WriteFile(t, dir, "winners.csv", testutil.SampleWinnersCSV)
	testutil.WriteFile(t, dir, "exclude.txt", testutil.SampleExclude)

	_, stderr, err := runCLI(t, "refine",
		"-s", "straights.txt",
		"-w", "winners.csv", "--winners-text", "00000",
		"-x", "exclude.txt",
		"-o", "text",
		"-f", "copy.txt",
		"--download")
	require.NoError(t, err)

	assert.Contains(t, stderr, "Input straights: 6 | Winners parsed (as boxes): 3 | Kept after winners filter: 5 | Final kept after exclude: 2")
	assert.Contains(t, stderr, "Saved 2 straights to")

	for _, name := range []string{constants.DefaultPlayListFile, "copy.txt"} {
		data, readErr := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, readErr, name)
		assert.Equal(t, "08949\n09489", string(data))
	}
}

// TestRefine_Stdin tests reading straights from standard input.
func TestRefine_Stdin(t *testing.T) {
	chdir(t, t.TempDir())

	var stdout string
	var err error
	testutil.WithStdin(t, "0-8-9-4-9, 7-0-4-3-8", func() {
		stdout, _, err = runCLI(t, "refine", "-s", "-", "--winners-text", "98940\n34780", "-o", "text")
	})
	require.NoError(t, err)
	assert.Equal(t, "08949\n70438\n", stdout)
}

// TestRefine_ConfigDefaults tests configuration defaults and flag overrides.
//
// It verifies:
//   - dedupe, output.format and sources.winners come from .playrefine.yml
//   - An explicit --unique=false overrides the configured dedupe
func TestRefine_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	testutil.WriteFile(t, dir, "winners.csv", "1-4-7-8-8\n")
	testutil.WriteFile(t, dir, constants.ConfigFileName,
		"dedupe: true\noutput:\n  format: text\nsources:\n  winners: winners.csv\n")

	stdout, _, err := runCLI(t, "refine", "17488", "17488")
	require.NoError(t, err)
	assert.Equal(t, "17488\n", stdout)

	stdout, _, err = runCLI(t, "refine", "--unique=false", "17488", "17488")
	require.NoError(t, err)
	assert.Equal(t, "17488\n17488\n", stdout)
}

// TestRefine_Errors tests the exit codes of failing runs.
func TestRefine_Errors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	tests := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{"no straights", []string{"refine", "--winners-text", "14788"}, errors.ExitInputError, "no straights detected"},
		{"no winners", []string{"refine", "17488"}, errors.ExitInputError, "no valid 5-digit winners found"},
		{"missing winners file", []string{"refine", "17488", "-w", "missing.csv"}, errors.ExitInputError, "couldn't read winners list"},
		{"missing straights file", []string{"refine", "-s", "missing.txt", "--winners-text", "14788"}, errors.ExitInputError, "couldn't read straights list"},
		{"two stdin inputs", []string{"refine", "-s", "-", "-w", "-"}, errors.ExitFailure, "only one input can read from stdin"},
		{"bad format", []string{"refine", "17488", "--winners-text", "14788", "-o", "yaml"}, errors.ExitFailure, "unknown output format"},
		{"missing config", []string{"refine", "17488", "--winners-text", "14788", "-c", "nope.yml"}, errors.ExitConfigError, "failed to load config"},
		{"unwritable file", []string{"refine", "17488", "--winners-text", "14788", "-f", filepath.Join("no", "such", "dir.txt")}, errors.ExitFailure, "failed to write play list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetExitCode(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

// TestRefine_InvalidConfig tests that a config with unknown fields is a config error.
func TestRefine_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	testutil.WriteFile(t, dir, constants.ConfigFileName, "unique: true\n")

	_, _, err := runCLI(t, "refine", "17488", "--winners-text", "14788")
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	assert.Contains(t, err.Error(), "did you mean 'dedupe'?")
}

// TestStatsLine tests the stats line format.
func TestStatsLine(t *testing.T) {
	chdir(t, t.TempDir())

	_, stderr, err := runCLI(t, "refine", "-o", "text", "--winners-text", "12345", "54321 99999")
	require.NoError(t, err)
	assert.Equal(t,
		"Input straights: 2 | Winners parsed (as boxes): 1 | Kept after winners filter: 1 | Final kept after exclude: 1\n",
		stderr)
}

// TestRefine_TextOutputEmpty tests that text mode keeps stdout clean when nothing remains.
func TestRefine_TextOutputEmpty(t *testing.T) {
	stdout, stderr, err := runCLI(t, "refine", "-o", "text", "--winners-text", "12345", "99999")
	require.Error(t, err)

	assert.Equal(t, errors.ExitNoResult, errors.GetExitCode(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, constants.IconWarn+"  "+constants.MsgNoResult)
}

// TestRefine_ConfiguredStdin tests that a configured "-" counts toward the one-stdin rule.
//
// It verifies:
//   - Configured winners or exclude "-" conflicts with -s -
//   - Pasted winners text replaces the configured path, so no conflict arises
func TestRefine_ConfiguredStdin(t *testing.T) {
	tests := []struct {
		name             string
		winners, exclude string
		args             []string
		conflict         bool
	}{
		{"winners", "-", "", []string{"refine", "-s", "-", "-o", "text"}, true},
		{"exclude", "", "-", []string{"refine", "-s", "-", "--winners-text", "98940", "-o", "text"}, true},
		{"winners overridden", "-", "", []string{"refine", "-s", "-", "--winners-text", "98940", "-o", "text"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubConfig(t, testutil.NewConfig().WithSources(tt.winners, tt.exclude).Build())

			var stdout string
			var err error
			testutil.WithStdin(t, "08949 09489", func() {
				stdout, _, err = runCLI(t, tt.args...)
			})

			if !tt.conflict {
				require.NoError(t, err)
				assert.Equal(t, "08949\n09489\n", stdout)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
			assert.Contains(t, err.Error(), "only one input can read from stdin")
		})
	}
}

// TestRefine_UnboundedSizeLimit tests stdin with the largest possible max_file_size.
func TestRefine_UnboundedSizeLimit(t *testing.T) {
	stubConfig(t, testutil.NewConfig().WithMaxFileSize(math.MaxInt64).Build())

	var stdout string
	var err error
	testutil.WithStdin(t, "08949\n70438", func() {
		stdout, _, err = runCLI(t, "refine", "-s", "-", "--winners-text", "98940", "-o", "text")
	})
	require.NoError(t, err)
	assert.Equal(t, "08949\n", stdout)
}

// TestRefine_StubbedConfigDefaults tests that dedupe and format defaults come from the loaded config.
func TestRefine_StubbedConfigDefaults(t *testing.T) {
	stubConfig(t, testutil.NewConfig().WithDedupe(true).WithFormat("csv").Build())

	stdout, _, err := runCLI(t, "refine", "--winners-text", "14788", "17488", "17488", "71488")
	require.NoError(t, err)
	assert.Equal(t, "INDEX,STRAIGHT,BOX\n1,17488,14788\n2,71488,14788\n", stdout)
}
