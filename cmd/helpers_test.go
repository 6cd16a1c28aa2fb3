package cmd

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajxudir/playrefine/pkg/config"
	"github.com/ajxudir/playrefine/pkg/testutil"
	"github.com/ajxudir/playrefine/pkg/verbose"
)

// resetFlags restores every flag to its default and clears its Changed state.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range []*cobra.Command{rootCmd, refineCmd, boxCmd, configCmd, versionCmd} {
		c.Flags().VisitAll(reset)
	}
	rootCmd.PersistentFlags().VisitAll(reset)
}

// runCLI executes the command tree with args and captures both streams.
//
// Build warnings are skipped and $PLAYREFINE_CONFIG is cleared so results do
// not depend on the machine running the tests.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")

	resetFlags()
	t.Cleanup(func() {
		resetFlags()
		rootCmd.SetArgs(nil)
		verbose.Disable()
	})

	rootCmd.SetArgs(append([]string{"--skip-build-checks"}, args...))
	stdout, stderr = testutil.CaptureOutput(t, func() {
		err = ExecuteTest()
	})
	return stdout, stderr, err
}

// stubConfig makes the commands load cfg instead of reading config files.
func stubConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	original := loadConfigFunc
	loadConfigFunc = func(string, string) (*config.Config, error) { return cfg, nil }
	t.Cleanup(func() { loadConfigFunc = original })
}

// captureStdout is a test helper that captures stdout during function execution.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return testutil.CaptureStdout(t, fn)
}

// captureStderr is a test helper that captures stderr during function execution.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return testutil.CaptureStderr(t, fn)
}

// chdir changes the working directory to dir for the duration of the test,
// matching testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testing.Chdir: " + err.Error())
		}
	})
}
