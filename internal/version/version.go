// Package version reports the server's build version, injected at build
// time via ldflags or recovered from Go build info.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is set at build time via ldflags, e.g. "v0.2.0".
	Version = "dev"
	// GitCommit is the commit hash set at build time.
	GitCommit = "unknown"
)

// GetVersion returns the version string for the server.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return "dev"
}

// GetFullVersion returns the version with the commit hash when known.
func GetFullVersion() string {
	if GitCommit != "unknown" {
		return fmt.Sprintf("%s (commit: %s)", GetVersion(), GitCommit)
	}
	return GetVersion()
}
