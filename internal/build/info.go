// Package build exposes build-time metadata injected via ldflags.
package build

import "fmt"

// Version, Commit, and Branch are set at build time by:
//
//	-ldflags "-X github.com/brabenetz/archiv-index/internal/build.Version=... ..."
var (
	Version = "dev"
	Commit  = "unknown"
	Branch  = "unknown"
)

// Info is the one-line build description printed by the version command.
func Info() string {
	return fmt.Sprintf("archiv-index %s (commit %s, branch %s)", Version, Commit, Branch)
}
