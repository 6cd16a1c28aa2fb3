package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/source"
)

// writeConfig writes content to name inside dir and returns the path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadConfig tests the behavior of LoadConfig with various scenarios.
//
// It verifies:
//   - Defaults load when no config file exists
//   - A local .playrefine.yml overrides only the keys it sets
//   - An explicit path is used and must exist
//   - Unknown fields are rejected
func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	t.Run("defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := LoadConfig("", dir)
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.WorkingDir)
		assert.False(t, cfg.Dedupe)
		assert.Equal(t, "table", cfg.Output.Format)
		assert.Equal(t, constants.DefaultPlayListFile, cfg.Output.FileName)
		assert.Equal(t, source.DefaultMaxSize, cfg.GetMaxFileSize())
	})

	t.Run("local file layered on defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, constants.ConfigFileName, "dedupe: true\noutput:\n  format: json\n")

		cfg, err := LoadConfig("", dir)
		require.NoError(t, err)

		assert.True(t, cfg.Dedupe)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.Equal(t, constants.DefaultPlayListFile, cfg.Output.FileName)
	})

	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "custom.yml", "sources:\n  winners: winners.csv\n")

		cfg, err := LoadConfig(path, dir)
		require.NoError(t, err)
		assert.Equal(t, "winners.csv", cfg.Sources.Winners)
	})

	t.Run("missing explicit path", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"), "")
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("unknown field", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, constants.ConfigFileName, "unique: true\n")

		_, err := LoadConfig("", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "did you mean 'dedupe'?")
	})

	t.Run("empty file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, constants.ConfigFileName, "# nothing yet\n")

		cfg, err := LoadConfig("", dir)
		require.NoError(t, err)
		assert.Equal(t, "table", cfg.Output.Format)
	})

	t.Run("default working dir", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "c.yml", "dedupe: true\n")
		cfg, err := LoadConfig(path, "")
		require.NoError(t, err)
		assert.Equal(t, ".", cfg.WorkingDir)
	})
}

// TestLoadConfig_Env tests the PLAYREFINE_CONFIG environment variable.
//
// It verifies:
//   - The variable is used when no path is given
//   - An explicit path wins over the variable
func TestLoadConfig_Env(t *testing.T) {
	dir := t.TempDir()
	envPath := writeConfig(t, dir, "env.yml", "output:\n  format: csv\n")
	flagPath := writeConfig(t, dir, "flag.yml", "output:\n  format: xml\n")
	t.Setenv(EnvConfigPath, envPath)

	cfg, err := LoadConfig("", dir)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Output.Format)

	cfg, err = LoadConfig(flagPath, dir)
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Output.Format)
}

// TestLoadConfig_TooLarge tests the config file size limit.
func TestLoadConfig_TooLarge(t *testing.T) {
	dir := t.TempDir()
	big := make([]byte, DefaultMaxConfigFileSize+1)
	for i := range big {
		big[i] = '#'
	}
	path := filepath.Join(dir, "big.yml")
	require.NoError(t, os.WriteFile(path, big, 0o644))

	_, err := LoadConfig(path, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file too large")
}

// TestConfigPaths tests ResolvePath and PlayListPath.
func TestConfigPaths(t *testing.T) {
	cfg := &Config{WorkingDir: "/work"}

	assert.Equal(t, "", cfg.ResolvePath(""))
	assert.Equal(t, "-", cfg.ResolvePath("-"))
	assert.Equal(t, "/abs/w.csv", cfg.ResolvePath("/abs/w.csv"))
	assert.Equal(t, filepath.Join("/work", "w.csv"), cfg.ResolvePath("w.csv"))
	assert.Equal(t, filepath.Join("/work", constants.DefaultPlayListFile), cfg.PlayListPath())

	cfg.Output.FileName = "picks.txt"
	assert.Equal(t, filepath.Join("/work", "picks.txt"), cfg.PlayListPath())

	assert.Equal(t, "w.csv", (&Config{}).ResolvePath("w.csv"))
}

// TestConfigMarshal tests the behavior of Marshal.
func TestConfigMarshal(t *testing.T) {
	cfg := loadDefaultConfig()
	cfg.WorkingDir = "/work"

	out, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, out, "dedupe: false")
	assert.Contains(t, out, "file_name: final_play_list.txt")
	assert.NotContains(t, out, "/work")

	result := ValidateConfigFile([]byte(out))
	assert.False(t, result.HasErrors(), result.Summary(false))
}

// TestDefaults tests the embedded default and template files.
//
// It verifies:
//   - Both embedded files pass strict validation
//   - The default config matches the documented defaults
//   - A broken default falls back to hard-coded values
func TestDefaults(t *testing.T) {
	assert.False(t, ValidateConfigFile([]byte(GetDefaultConfig())).HasErrors())
	assert.False(t, ValidateConfigFile([]byte(GetTemplateConfig())).HasErrors())
	assert.Contains(t, GetTemplateConfig(), "file_name:")

	cfg := loadDefaultConfig()
	assert.Equal(t, int64(10485760), cfg.Sources.MaxFileSize)

	original := defaultConfigYAML
	defaultConfigYAML = "invalid: ["
	t.Cleanup(func() { defaultConfigYAML = original })

	fallback := loadDefaultConfig()
	assert.Equal(t, "table", fallback.Output.Format)
	assert.Equal(t, constants.DefaultPlayListFile, fallback.Output.FileName)
}
