package version

// These variables are set at build time using ldflags.
// Example: go build -ldflags "-X tasktrack/internal/version.Version=v1.0.0"
var (
	// Version is the semantic version of the application.
	Version = "0.1.0"

	// CommitSHA is the git commit SHA at build time.
	CommitSHA = "unknown"
)

// String returns the version line printed by `tasktrack version`.
func String() string {
	if CommitSHA == "unknown" {
		return "tasktrack " + Version
	}
	return "tasktrack " + Version + " (" + CommitSHA + ")"
}
