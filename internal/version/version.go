// Package version reports the wam build.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X github.com/example/wam/internal/version.Commit=...".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = "unknown"
)

// String returns "wam <version> (commit: <short>, built: <time>)".
func String() string {
	return format(Version, commit(), BuildTime)
}

func format(version, commit, built string) string {
	return fmt.Sprintf("wam %s (commit: %s, built: %s)", version, shortCommit(commit), built)
}

// commit falls back to the VCS revision go stamps into the binary.
func commit() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
