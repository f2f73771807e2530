package clu

// Release metadata, overridden at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Version returns the release version string.
func Version() string {
	return version
}

// BuildInfo returns the version, commit and build date, one per line.
func BuildInfo() string {
	return "Version: " + version + "\nCommit: " + commit + "\nBuild Date: " + date
}
