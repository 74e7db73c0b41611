package version

import "fmt"

// Build information. Populated at build-time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
	BuiltBy = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the full version information
func GetFullVersion() string {
	return fmt.Sprintf("rulescan %s (commit: %s, built: %s, by: %s)", Version, Commit, Date, BuiltBy)
}

// Short returns a short version string suitable for display
func Short() string {
	if Version == "dev" {
		return fmt.Sprintf("dev-%s", Commit)
	}
	return Version
}
