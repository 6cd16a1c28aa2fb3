package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/source"
)

//go:embed default.yml
var defaultConfigYAML string

//go:embed template.yml
var templateConfigYAML string

// loadDefaultConfig loads the embedded default configuration.
//
// This unmarshals the embedded default.yml file into a Config structure.
// If unmarshaling fails, returns the hard-coded equivalent.
//
// Returns:
//   - *Config: the default configuration
func loadDefaultConfig() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err == nil {
		return &cfg
	}
	return &Config{
		Output:  OutputCfg{Format: "table", FileName: constants.DefaultPlayListFile},
		Sources: SourcesCfg{MaxFileSize: source.DefaultMaxSize},
	}
}

// GetDefaultConfig returns the embedded default configuration YAML.
//
// Returns:
//   - string: the default configuration as YAML
func GetDefaultConfig() string {
	return defaultConfigYAML
}

// GetTemplateConfig returns the embedded template configuration YAML.
//
// This is the commented starter file written by `config --init`.
//
// Returns:
//   - string: the template configuration as YAML
func GetTemplateConfig() string {
	return templateConfigYAML
}
