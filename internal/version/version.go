package version

// Build metadata, set via ldflags.
var (
	// Release is the gas-reporter release version.
	Release = "dev"
	// GitCommit is the short git commit hash.
	GitCommit = "unknown"
)
