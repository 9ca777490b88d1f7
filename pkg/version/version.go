// Package version carries the build metadata stamped into release binaries.
package version

import "fmt"

// Overridden at build time via:
//
//	go build -ldflags "-X github.com/vanderheijden86/primer/pkg/version.Version=v1.2.3"
var (
	Version = "v0.4.0"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the line printed by primer --version.
func String() string {
	return fmt.Sprintf("primer %s (commit %s, built %s)", Version, Commit, Date)
}
