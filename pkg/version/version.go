package version

import (
	"fmt"
	"runtime"
)

// Build information that can be set via ldflags during build
var (
	// Version is the main version number that is being run at the moment.
	Version = "dev"

	// GitCommit is the git commit hash this binary was built from
	GitCommit = "unknown"

	// BuildDate is the date this binary was built
	BuildDate = "unknown"

	// GoVersion is the version of Go this was compiled with
	GoVersion = runtime.Version()
)

// String returns a single-line version string for the CLI.
func String() string {
	if Version == "dev" && len(GitCommit) >= 8 {
		return fmt.Sprintf("dev-%s (built %s, %s)", GitCommit[:8], BuildDate, GoVersion)
	}
	return fmt.Sprintf("%s (built %s, %s)", Version, BuildDate, GoVersion)
}
