// Package buildinfo carries version metadata injected at build time via
// -ldflags.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a one-line version description.
func String() string {
	return fmt.Sprintf("mudra %s (commit=%s, date=%s)", Version, Commit, Date)
}
