// Package build holds values stamped into the binary at link time.
package build

// These are set with -ldflags "-X github.com/stackchain/stackchain/internal/build.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
