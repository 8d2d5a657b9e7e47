package buildinfo

import "fmt"

// Overridden at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("calcctl %s (commit=%s, date=%s)", Version, Commit, Date)
}
