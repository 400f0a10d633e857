// Package version reports build-stamped version information for the kclfs
// binary.
package version

import "runtime/debug"

// Version is the semantic version of the build, set via ldflags by the
// release pipeline.
var Version = "dev"

// Revision returns the VCS revision the binary was built from, when the
// build embedded one.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return "unknown"
}
