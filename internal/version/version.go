// Package version carries build metadata, set with -ldflags at release time:
//
//	go build -ldflags "-X github.com/mbu09a/Code-Xanadu/internal/version.Version=v1.2.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s)", Version, commit(), BuildDate, runtime.Version())
}

// commit falls back to the VCS revision stamped by the Go toolchain when no
// commit was injected at link time.
func commit() string {
	if Commit != "unknown" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return Commit
}
