package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/ajxudir/playrefine/pkg/constants"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/playrefine/cmd.Version=v1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
	// BuildOS is the target OS the binary was built for.
	BuildOS = ""
	// BuildArch is the target architecture the binary was built for.
	BuildArch = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Show version, build date, and system information.`,
	Run:   runVersion,
}

// runVersion executes the version command to display build and version information.
//
// Dev builds get an extra notice after the version block.
func runVersion(cmd *cobra.Command, args []string) {
	printVersionOutput()
	if w := GetDevBuildWarning(); w != "" {
		fmt.Println()
		fmt.Print(w)
	}
}

// GetVersion returns the current version string.
//
// Returns:
//   - string: Version string (e.g., "v1.0.0", "dev")
func GetVersion() string {
	return Version
}

// canonicalVersion returns Version with a leading "v", as semver expects.
func canonicalVersion() string {
	if strings.HasPrefix(Version, "v") {
		return Version
	}
	return "v" + Version
}

// getBuildTarget returns the OS and architecture the binary was built for.
//
// Falls back to runtime values if build-time values weren't set (dev builds).
//
// Returns:
//   - string: Target operating system (e.g., "linux", "darwin", "windows")
//   - string: Target architecture (e.g., "amd64", "arm64")
func getBuildTarget() (string, string) {
	buildOS := BuildOS
	buildArch := BuildArch

	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}

	return buildOS, buildArch
}

// HasArchMismatch returns true if the binary was built for a different
// OS or architecture than what it's running on.
//
// Returns:
//   - bool: true if build target differs from runtime platform; false otherwise
func HasArchMismatch() bool {
	if BuildOS == "" && BuildArch == "" {
		return false
	}

	buildOS, buildArch := getBuildTarget()
	return buildOS != runtime.GOOS || buildArch != runtime.GOARCH
}

// GetArchMismatchWarning returns a warning message if there's an architecture
// mismatch, or an empty string if everything matches.
//
// Returns:
//   - string: Warning message if mismatch exists; empty string if platforms match
func GetArchMismatchWarning() string {
	if !HasArchMismatch() {
		return ""
	}

	buildOS, buildArch := getBuildTarget()
	return fmt.Sprintf("%s  Architecture mismatch: binary built for %s/%s but running on %s/%s\n"+
		"   This may cause unexpected behavior. Please download the correct binary.\n",
		constants.IconWarn, buildOS, buildArch, runtime.GOOS, runtime.GOARCH)
}

// IsDevBuild returns true if this is a development build (no release tag).
//
// Any version that is not valid semver, including the default "dev", counts
// as a development build.
//
// Returns:
//   - bool: true for untagged builds; false for tagged releases
func IsDevBuild() bool {
	return !semver.IsValid(canonicalVersion())
}

// IsPrerelease returns true if this is a prerelease version such as v1.2.0-rc.1.
//
// Returns:
//   - bool: true if Version is valid semver with a prerelease suffix
func IsPrerelease() bool {
	v := canonicalVersion()
	return semver.IsValid(v) && semver.Prerelease(v) != ""
}

// GetDevBuildWarning returns a notice if running a dev build,
// or an empty string if running a released version.
//
// Returns:
//   - string: Warning message for dev builds; empty string for releases
func GetDevBuildWarning() string {
	if !IsDevBuild() {
		return ""
	}

	return constants.IconWarn + "  Development build: this is an unreleased version without a version tag.\n" +
		"   For regular use, please install a released version.\n"
}

// GetPrereleaseWarning returns a warning message if running a prerelease version,
// or an empty string if running a stable release.
//
// Returns:
//   - string: Warning message for prereleases; empty string for stable releases
func GetPrereleaseWarning() string {
	if !IsPrerelease() {
		return ""
	}

	return constants.IconWarn + "  Prerelease build: " + Version + "\n" +
		"   Install a stable release (vX.Y.Z) for regular use.\n"
}

// GetBuildWarnings returns the warnings shown before every command.
//
// Dev builds are reported only by the version command.
//
// Returns:
//   - string: Combined warning messages; empty string if no warnings
func GetBuildWarnings() string {
	var warnings string

	if w := GetArchMismatchWarning(); w != "" {
		warnings += w
	}

	if w := GetPrereleaseWarning(); w != "" {
		warnings += w
	}

	return warnings
}
