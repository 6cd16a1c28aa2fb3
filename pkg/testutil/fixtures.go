package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ajxudir/playrefine/pkg/config"
)

// Sample lists in the formats users paste or upload.
const (
	// SampleStraights is a generated play list, one straight per line.
	SampleStraights = "08949\n09489\n70438\n17488\n71488\n17488\n"

	// SampleWinnersCSV is a dashed winners export.
	SampleWinnersCSV = "1-7-4-8-8\n9-4-8-9-0\n4-2-0-0-3\n"

	// SampleExclude is an exclude list with a single box.
	SampleExclude = "8-4-1-7-8\n"
)

// WriteFile writes content to name inside dir and returns the full path.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - dir: Target directory, usually t.TempDir()
//   - name: File name
//   - content: File content
//
// Returns:
//   - string: Path of the written file
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ConfigBuilder provides a fluent API for building test configurations.
//
// Command tests return its result from a stubbed config loader to reach
// settings that LoadConfig would reject or that are awkward to write as YAML.
type ConfigBuilder struct {
	cfg *config.Config
}

// NewConfig creates a ConfigBuilder seeded with the documented defaults.
//
// Returns:
//   - *ConfigBuilder: builder ready for chaining
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: &config.Config{
		Output:     config.OutputCfg{Format: "table", FileName: "final_play_list.txt"},
		WorkingDir: ".",
	}}
}

// WithWorkingDir sets the working directory.
func (b *ConfigBuilder) WithWorkingDir(dir string) *ConfigBuilder {
	b.cfg.WorkingDir = dir
	return b
}

// WithDedupe sets the dedupe default.
func (b *ConfigBuilder) WithDedupe(on bool) *ConfigBuilder {
	b.cfg.Dedupe = on
	return b
}

// WithFormat sets the default output format.
func (b *ConfigBuilder) WithFormat(format string) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithSources sets the default winners and exclude paths.
func (b *ConfigBuilder) WithSources(winners, exclude string) *ConfigBuilder {
	b.cfg.Sources.Winners = winners
	b.cfg.Sources.Exclude = exclude
	return b
}

// WithMaxFileSize sets the input size limit.
func (b *ConfigBuilder) WithMaxFileSize(n int64) *ConfigBuilder {
	b.cfg.Sources.MaxFileSize = n
	return b
}

// Build returns the configuration.
func (b *ConfigBuilder) Build() *config.Config {
	return b.cfg
}
