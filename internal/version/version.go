package version

import "fmt"

var (
	// BuildVersion is overridden at build time via ldflags.
	BuildVersion = "0.0.0-dev"
	BuildDate    = "unknown"
	Commit       = "unknown"
)

func Full() string {
	return fmt.Sprintf("blockpad %s (%s) built on %s", BuildVersion, Commit, BuildDate)
}
