// Package buildinfo holds build-time variables injected via ldflags.
package buildinfo

// Populated by -ldflags at build time; defaults used for local dev.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// String returns the version line printed by `todo --version`.
func String() string {
	return Version + " (commit " + GitCommit + ", built " + BuildDate + ")"
}
