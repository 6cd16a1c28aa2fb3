package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajxudir/playrefine/pkg/config"
	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/errors"
	"github.com/ajxudir/playrefine/pkg/verbose"
	"github.com/spf13/cobra"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
	configStrictFlag        bool
	configPathFlag          string
)

var (
	loadConfigFunc = config.LoadConfig
	writeFileFunc  = os.WriteFile
	readFileFunc   = os.ReadFile
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create configuration",
	Long:  `Show, validate or create the .playrefine.yml configuration file.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create "+constants.ConfigFileName+" template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
	configCmd.Flags().BoolVar(&configStrictFlag, "strict", false, "With --validate, treat warnings as errors")
	configCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "Config file path")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .playrefine.yml template file
//   - --validate: Validates the configuration file for schema errors
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the effective merged configuration
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	if configInitFlag {
		return createConfigTemplate()
	}

	if configValidateFlag {
		return validateConfigFile()
	}

	if configShowDefaultsFlag {
		fmt.Println("Default configuration:")
		fmt.Println()
		fmt.Println(config.GetDefaultConfig())
		return nil
	}

	if configShowEffectiveFlag {
		workDir, _ := os.Getwd()
		cfg, err := loadConfigFunc(configPathFlag, workDir)
		if err != nil {
			return errors.NewExitError(errors.ExitConfigError, err)
		}

		body, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}

		fmt.Println("Effective configuration:")
		fmt.Println()
		fmt.Printf("# Working Directory: %s\n", cfg.WorkingDir)
		fmt.Print(body)
		return nil
	}

	return cmd.Help()
}

// configFileToValidate returns the --config path, $PLAYREFINE_CONFIG, or the local file.
func configFileToValidate() string {
	if configPathFlag != "" {
		return configPathFlag
	}
	if env := os.Getenv(config.EnvConfigPath); env != "" {
		return env
	}
	workDir, _ := os.Getwd()
	return filepath.Join(workDir, constants.ConfigFileName)
}

// validateConfigFile validates the configuration file.
//
// Reports validation errors and warnings to stdout.
//
// Returns:
//   - error: Returns ExitError with ExitConfigError code on validation failure
func validateConfigFile() error {
	configPath := configFileToValidate()

	data, err := readFileFunc(configPath)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	var result *config.ValidationResult
	if configStrictFlag {
		result = config.ValidateConfigFileStrict(data)
	} else {
		result = config.ValidateConfigFile(data)
	}

	if result.HasErrors() {
		fmt.Printf("%s Configuration validation failed for: %s\n\n", constants.IconError, configPath)

		for _, e := range result.Errors {
			if verbose.IsEnabled() {
				fmt.Printf("  ERROR: %s\n", e.VerboseError())
			} else {
				fmt.Printf("  ERROR: %s\n", e.Error())
			}
		}
		fmt.Println()
		if !verbose.IsEnabled() {
			fmt.Printf("%s Run with --verbose for detailed schema information\n", constants.IconLightbulb)
		}
		verbose.WithDocRef("config", "configuration validation failed for "+configPath)
		return errors.NewSilentExit(errors.ExitConfigError)
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("%s Configuration valid with warnings: %s\n\n", constants.IconWarn, configPath)
		for _, w := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", w)
		}
		fmt.Println()
	} else {
		fmt.Printf("%s Configuration valid: %s\n", constants.IconCheckmarkBox, configPath)
	}

	return nil
}

// createConfigTemplate creates a new .playrefine.yml template file.
//
// The template is created in the current directory. Fails if a config
// file already exists at that location.
//
// Returns:
//   - error: Returns error if file exists or cannot be created
func createConfigTemplate() error {
	configPath := constants.ConfigFileName
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := writeFileFunc(configPath, []byte(config.GetTemplateConfig()), 0o644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Created configuration template: %s\n", configPath)
	return nil
}
