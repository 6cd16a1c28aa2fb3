// Package config handles configuration loading and validation for playrefine.
// It reads an optional .playrefine.yml file, layers it over the embedded
// defaults and rejects unknown or invalid settings.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that may point at a config file.
const EnvConfigPath = "PLAYREFINE_CONFIG"

// DefaultMaxConfigFileSize is the largest config file LoadConfig reads (1MB).
const DefaultMaxConfigFileSize int64 = 1024 * 1024

// LoadConfig loads configuration from the specified path or defaults.
//
// It performs the following operations:
//   - Step 1: Uses configPath, else $PLAYREFINE_CONFIG, else .playrefine.yml in workDir
//   - Step 2: Validates the file strictly (unknown fields are errors)
//   - Step 3: Layers the file over the embedded defaults
//   - Step 4: Records workDir for relative path resolution
//
// An explicitly named file that does not exist is an error; a missing
// .playrefine.yml silently falls back to the defaults.
//
// Parameters:
//   - configPath: path to the config file, or empty to search
//   - workDir: working directory for the configuration
//
// Returns:
//   - *Config: the loaded configuration
//   - error: any error encountered during loading or validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	cfg := loadDefaultConfig()

	path := configPath
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path != "" {
			verbose.Infof("Using config from $%s", EnvConfigPath)
		}
	}

	switch {
	case path != "":
		if err := loadConfigFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		verbose.ConfigLoaded(path)
	default:
		localConfig := filepath.Join(workDir, constants.ConfigFileName)
		if _, err := os.Stat(localConfig); err == nil {
			if err := loadConfigFile(localConfig, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", localConfig, err)
			}
			verbose.ConfigLoaded(localConfig)
		} else {
			verbose.Info("Using built-in default configuration")
		}
	}

	if workDir != "" {
		cfg.WorkingDir = workDir
	} else {
		cfg.WorkingDir = "."
	}

	return cfg, nil
}

// loadConfigFile reads, validates and applies a config file onto cfg.
//
// Keys absent from the file keep the values already in cfg.
//
// Parameters:
//   - path: path to the config file
//   - cfg: configuration to update in place
//
// Returns:
//   - error: when the file is unreadable, too large, or fails validation
func loadConfigFile(path string, cfg *Config) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > DefaultMaxConfigFileSize {
		return fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), DefaultMaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	result := ValidateConfigFile(data)
	if result.HasErrors() {
		return fmt.Errorf("%s", result.Summary(verbose.IsEnabled()))
	}

	return applyConfigData(data, cfg)
}

// applyConfigData unmarshals YAML onto an existing configuration.
//
// Parameters:
//   - data: YAML configuration data as bytes
//   - cfg: configuration to update in place
//
// Returns:
//   - error: error if YAML is invalid or malformed
func applyConfigData(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return nil
}

// Marshal renders cfg as YAML, used by `config --show-effective`.
//
// Returns:
//   - string: the YAML document
//   - error: when encoding fails
func (c *Config) Marshal() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
