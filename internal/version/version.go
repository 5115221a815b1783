// Package version holds build metadata for the gosas binary.
package version

import "fmt"

// Set at build time, e.g.
// go build -ldflags "-X github.com/alexiusacademia/gosas/internal/version.Version=0.2.0"
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// String returns the one-line version banner
func String() string {
	s := "gosas v" + Version
	if GitCommit != "unknown" {
		s += fmt.Sprintf(" (%s, built %s)", GitCommit, BuildTime)
	}
	return s
}
