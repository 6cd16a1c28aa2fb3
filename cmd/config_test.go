package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/errors"
	"github.com/ajxudir/playrefine/pkg/testutil"
)

// TestConfigCommand tests the behavior of the config command with various flags.
//
// It verifies:
//   - --show-defaults prints the embedded defaults
//   - --init creates the template and refuses to overwrite it
//   - --show-effective reflects the local config file
//   - No flag prints help
func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	stdout, _, err := runCLI(t, "config", "--show-defaults")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Default configuration:")
	assert.Contains(t, stdout, "file_name: final_play_list.txt")

	stdout, _, err = runCLI(t, "config", "--init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created configuration template: "+constants.ConfigFileName)
	data, err := os.ReadFile(filepath.Join(dir, constants.ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_file_size:")

	_, _, err = runCLI(t, "config", "--init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file already exists")

	testutil.WriteFile(t, dir, constants.ConfigFileName, "output:\n  format: csv\n")
	stdout, _, err = runCLI(t, "config", "--show-effective")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Effective configuration:")
	assert.Contains(t, stdout, "format: csv")
	assert.Contains(t, stdout, "# Working Directory:")

	stdout, _, err = runCLI(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--validate")
}

// TestConfigInit_WriteError tests --init when the file cannot be written.
func TestConfigInit_WriteError(t *testing.T) {
	chdir(t, t.TempDir())
	oldWrite := writeFileFunc
	defer func() { writeFileFunc = oldWrite }()
	writeFileFunc = func(string, []byte, os.FileMode) error { return assert.AnError }

	_, _, err := runCLI(t, "config", "--init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config file")
}

// TestConfigValidate tests the behavior of config --validate.
//
// It verifies:
//   - A valid file reports success
//   - Warnings are shown and become errors with --strict
//   - Unknown fields fail with ExitConfigError
//   - A missing file fails with ExitConfigError
func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	valid := testutil.WriteFile(t, dir, "valid.yml", "dedupe: true\n")
	stdout, _, err := runCLI(t, "config", "--validate", "-c", valid)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration valid: "+valid)

	warn := testutil.WriteFile(t, dir, "warn.yml", "sources:\n  winners: a.csv\n  exclude: a.csv\n")
	stdout, _, err = runCLI(t, "config", "--validate", "-c", warn)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration valid with warnings")

	_, _, err = runCLI(t, "config", "--validate", "--strict", "-c", warn)
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))

	testutil.WriteFile(t, dir, constants.ConfigFileName, "output:\n  fileName: x.txt\n")
	stdout, _, err = runCLI(t, "config", "--validate")
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	assert.Contains(t, stdout, "did you mean 'file_name'?")
	assert.Contains(t, stdout, "Run with --verbose")

	_, _, err = runCLI(t, "config", "--validate", "-c", filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to read config file")
}

// TestConfigShowEffective_Invalid tests --show-effective with a broken config.
func TestConfigShowEffective_Invalid(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	testutil.WriteFile(t, dir, constants.ConfigFileName, "output: [\n")

	_, _, err := runCLI(t, "config", "--show-effective")
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
}
