package version

import "fmt"

// These are set at build time via -ldflags "-X github.com/iotempower/installcheck/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "local"
)

// String returns the version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (Commit: %s) (Date: %s) (Built by: %s)", Version, Commit, Date, BuiltBy)
}

// Short returns the bare version, without a leading "v" for release builds.
func Short() string {
	if len(Version) > 1 && Version[0] == 'v' && Version[1] >= '0' && Version[1] <= '9' {
		return Version[1:]
	}
	return Version
}
