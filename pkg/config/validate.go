package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/ajxudir/playrefine/pkg/output"
	"github.com/ajxudir/playrefine/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// ValidationError is one problem found in a configuration file.
//
// Fields:
//   - Field: Dotted key path such as "output.format"; empty when yaml.v3 does not name one
//   - Line: 1-based line in the file, or 0 when unknown
//   - Message: What is wrong
//   - Expected: Accepted values or keys, shown in verbose mode
type ValidationError struct {
	Field    string
	Line     int
	Message  string
	Expected string
}

// Error returns "field: message (line N)", omitting the parts that are unknown.
func (e ValidationError) Error() string {
	var sb strings.Builder
	if e.Field != "" {
		sb.WriteString(e.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Line > 0 {
		fmt.Fprintf(&sb, " (line %d)", e.Line)
	}
	return sb.String()
}

// VerboseError returns Error followed by the accepted values, if known.
func (e ValidationError) VerboseError() string {
	if e.Expected == "" {
		return e.Error()
	}
	return e.Error() + "\n    Expected: " + e.Expected
}

// ValidationResult holds the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Summary renders all errors as one block for error returns.
//
// Parameters:
//   - detailed: Include the Expected hint of every error
//
// Returns:
//   - string: "Configuration validation failed:" followed by one line per error, or "" when valid
func (r *ValidationResult) Summary(detailed bool) string {
	if len(r.Errors) == 0 {
		return ""
	}
	lines := make([]string, 0, len(r.Errors)+1)
	lines = append(lines, "Configuration validation failed:")
	for _, e := range r.Errors {
		if detailed {
			lines = append(lines, "  - "+e.VerboseError())
		} else {
			lines = append(lines, "  - "+e.Error())
		}
	}
	return strings.Join(lines, "\n")
}

// section describes one YAML mapping of the config file, keyed in sections
// by the Go type name yaml.v3 reports in its errors.
type section struct {
	path string
	keys []string
}

var sections = map[string]section{
	"config.Config":     {"", []string{"dedupe", "output", "sources"}},
	"config.OutputCfg":  {"output", []string{"format", "file", "file_name"}},
	"config.SourcesCfg": {"sources", []string{"winners", "exclude", "max_file_size"}},
}

// keyAliases maps names users reach for to the real key.
var keyAliases = map[string]string{
	"unique":   "dedupe",
	"dedup":    "dedupe",
	"source":   "sources",
	"outputs":  "output",
	"formats":  "format",
	"path":     "file",
	"winner":   "winners",
	"excludes": "exclude",
	"max_size": "max_file_size",
}

var (
	unknownFieldRE = regexp.MustCompile(`^line (\d+): field (\S+) not found in type (\S+)$`)
	typeMismatchRE = regexp.MustCompile(`^line (\d+): cannot unmarshal (\S+).* into (\S+)$`)
)

// ValidateConfigFile validates a YAML configuration file.
//
// It performs the following operations:
//   - Step 1: Decodes with KnownFields(true) so misspelled keys are errors
//   - Step 2: Turns every yaml.v3 type error into a ValidationError with line and key hints
//   - Step 3: Checks values (format, file name, size limit, sources)
//
// An empty document is valid.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func ValidateConfigFile(data []byte) *ValidationResult {
	result := &ValidationResult{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			verbose.Printf("Config validation PASSED: empty document\n")
			return result
		}
		verbose.Printf("Config validation FAILED: %v\n", err)
		result.Errors = decodeErrors(err)
		return result
	}

	validateConfigStruct(&cfg, result)

	if len(result.Errors) == 0 {
		verbose.Printf("Config validation PASSED with %d warnings\n", len(result.Warnings))
	} else {
		verbose.Printf("Config validation FAILED: %d errors found\n", len(result.Errors))
	}
	return result
}

// decodeErrors converts a yaml.v3 decode error into validation errors.
//
// A *yaml.TypeError carries one message per offending node; anything else is
// a syntax error.
func decodeErrors(err error) []ValidationError {
	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		return []ValidationError{{Message: "YAML syntax error: " + err.Error()}}
	}

	out := make([]ValidationError, 0, len(typeErr.Errors))
	for _, msg := range typeErr.Errors {
		out = append(out, describeTypeError(msg))
	}
	return out
}

// describeTypeError parses one yaml.v3 type error line.
func describeTypeError(msg string) ValidationError {
	if m := unknownFieldRE.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		sec := sections[m[3]]
		verr := ValidationError{
			Field:   joinKey(sec.path, m[2]),
			Line:    line,
			Message: "unknown field",
		}
		if len(sec.keys) > 0 {
			verr.Expected = "one of " + strings.Join(sec.keys, ", ")
		}
		if suggestion := suggestKey(m[2], sec.keys); suggestion != "" {
			verr.Message += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
		}
		return verr
	}

	if m := typeMismatchRE.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return ValidationError{
			Line:     line,
			Message:  "cannot unmarshal " + m[2],
			Expected: m[3],
		}
	}

	return ValidationError{Message: msg}
}

// joinKey builds a dotted key path.
func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// suggestKey returns the valid key field most likely meant, or "".
//
// Aliases are tried first, then a match ignoring case, "_" and "-" so that
// fileName, file-name and filename all suggest file_name.
func suggestKey(field string, keys []string) string {
	if target, ok := keyAliases[field]; ok && slices.Contains(keys, target) {
		return target
	}
	want := foldKey(field)
	for _, k := range keys {
		if foldKey(k) == want {
			return k
		}
	}
	return ""
}

var keyFolder = strings.NewReplacer("_", "", "-", "")

func foldKey(k string) string {
	return strings.ToLower(keyFolder.Replace(k))
}

// Validate validates a loaded Config struct.
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}
	validateConfigStruct(c, result)
	return result
}

// validateConfigStruct checks the values of a decoded Config.
//
// Parameters:
//   - cfg: the configuration to validate
//   - result: validation result to append errors and warnings to
func validateConfigStruct(cfg *Config, result *ValidationResult) {
	if cfg.Output.Format != "" && !output.IsValidFormat(cfg.Output.Format) {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "output.format",
			Message:  fmt.Sprintf("unknown format %q", cfg.Output.Format),
			Expected: "table, text, json, csv or xml",
		})
	}

	if name := cfg.Output.FileName; name != "" {
		if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			result.Errors = append(result.Errors, ValidationError{
				Field:    "output.file_name",
				Message:  fmt.Sprintf("file name %q must not contain a path", name),
				Expected: "a plain file name such as " + constants.DefaultPlayListFile,
			})
		}
	}

	if cfg.Sources.MaxFileSize < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "sources.max_file_size",
			Message:  "must not be negative",
			Expected: "size in bytes, or 0 for the built-in limit",
		})
	}

	// Stdin is only selected on the command line.
	for _, src := range []struct{ key, path string }{
		{"sources.winners", cfg.Sources.Winners},
		{"sources.exclude", cfg.Sources.Exclude},
	} {
		if src.path == constants.StdinPath {
			result.Errors = append(result.Errors, ValidationError{
				Field:    src.key,
				Message:  "stdin (-) cannot be configured",
				Expected: "a file path; pass - on the command line instead",
			})
		}
	}

	if cfg.Sources.Winners != "" && cfg.Sources.Winners == cfg.Sources.Exclude {
		result.Warnings = append(result.Warnings,
			"sources.winners and sources.exclude name the same file; every straight will be excluded")
	}
}

// ValidateConfigFileStrict is like ValidateConfigFile but treats warnings as errors.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *ValidationResult: validation result with warnings converted to errors
func ValidateConfigFileStrict(data []byte) *ValidationResult {
	result := ValidateConfigFile(data)
	for _, w := range result.Warnings {
		result.Errors = append(result.Errors, ValidationError{Message: w})
	}
	result.Warnings = nil
	return result
}
