// Package cmd implements the command-line interface for playrefine.
// It provides commands for refining a play list against winners and exclude
// lists, inspecting box keys, and managing configuration.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/errors"
	"github.com/ajxudir/playrefine/pkg/verbose"
	"github.com/ajxudir/playrefine/pkg/warnings"
	"github.com/spf13/cobra"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var skipBuildChecksFlag bool

var rootCmd = &cobra.Command{
	Use:   "playrefine",
	Short: "Pick-5 final play list refiner",
	Long: `Keep only the straights whose box matches a winner, then drop any whose
box matches an exclude list. Order and formatting of your straights are kept.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		// Show build warnings (arch mismatch, prerelease) at the top of every command
		if !skipBuildChecksFlag {
			if w := GetBuildWarnings(); w != "" {
				warnings.Warnf("%s\n", w)
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput()
			return
		}
		fmt.Println(constants.MsgPrompt)
		fmt.Println()
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Nothing remained after filtering
//   - 2: Failure
//   - 3: Configuration or validation error
//   - 4: Input error (no straights, no winners, unreadable source)
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errors.PrintErrorWithHints(os.Stderr, []error{err}, verboseFlag)

		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit or printing it, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (arch mismatch, prerelease)")

	// Add -v/--version as a LOCAL flag (not persistent) so it only works on root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(refineCmd)
	rootCmd.AddCommand(boxCmd)
}

// printVersionOutput prints version, build, and runtime information to stdout.
//
// Output includes build target platform, runtime platform (if different),
// Go version, build date, git commit, and version string.
func printVersionOutput() {
	buildOS, buildArch := getBuildTarget()
	fmt.Printf("  Build:   %s/%s\n", buildOS, buildArch)

	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		fmt.Printf("  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	fmt.Printf("  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		fmt.Printf("  Date:    %s\n", BuildTime)
	}
	fmt.Println()
	if GitCommit != "" {
		fmt.Printf("  Git:     %s\n", GitCommit)
	}
	fmt.Printf("  Version: %s\n", Version)
}
