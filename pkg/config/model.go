package config

import (
	"path/filepath"

	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/source"
)

// Config is the root configuration structure.
type Config struct {
	Dedupe  bool       `yaml:"dedupe"`
	Output  OutputCfg  `yaml:"output"`
	Sources SourcesCfg `yaml:"sources"`

	// WorkingDir is the directory relative paths resolve against.
	// It is set by LoadConfig and never read from YAML.
	WorkingDir string `yaml:"-"`
}

// OutputCfg controls how the final play list is presented and saved.
type OutputCfg struct {
	// Format is the default output format: table, text, json, csv or xml.
	Format string `yaml:"format"`

	// File, when set, is always written with the final list.
	File string `yaml:"file"`

	// FileName is the name used by --download, relative to the working directory.
	FileName string `yaml:"file_name"`
}

// SourcesCfg holds default inputs used when no flag names one.
type SourcesCfg struct {
	Winners string `yaml:"winners"`
	Exclude string `yaml:"exclude"`

	// MaxFileSize caps every file or stream read, in bytes. 0 uses the built-in limit.
	MaxFileSize int64 `yaml:"max_file_size"`
}

// GetMaxFileSize returns the effective input size limit.
//
// Returns:
//   - int64: Sources.MaxFileSize, or source.DefaultMaxSize when unset
func (c *Config) GetMaxFileSize() int64 {
	if c.Sources.MaxFileSize <= 0 {
		return source.DefaultMaxSize
	}
	return c.Sources.MaxFileSize
}

// ResolvePath makes p relative to the working directory.
//
// Empty paths, absolute paths and the stdin marker "-" are returned unchanged.
//
// Parameters:
//   - p: A path from the config file or a flag
//
// Returns:
//   - string: The resolved path
func (c *Config) ResolvePath(p string) string {
	if p == "" || p == constants.StdinPath || filepath.IsAbs(p) || c.WorkingDir == "" {
		return p
	}
	return filepath.Join(c.WorkingDir, p)
}

// PlayListPath returns where --download saves the final list.
func (c *Config) PlayListPath() string {
	name := c.Output.FileName
	if name == "" {
		name = constants.DefaultPlayListFile
	}
	return c.ResolvePath(name)
}
