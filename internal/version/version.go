// Package version reports the build that produced the extractor and loader binaries.
//
// Set at link time:
//
//	go build -ldflags "-X github.com/rickgao/energy-billing/internal/version.Version=0.3.0 \
//	                   -X github.com/rickgao/energy-billing/internal/version.Commit=$(git rev-parse --short HEAD)" ./cmd/...
package version

import (
	"log/slog"
	"runtime/debug"
)

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the short git hash. Falls back to the VCS stamp in build info.
	Commit = ""
)

// Revision returns Commit, or the vcs.revision recorded by the Go toolchain.
func Revision() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}

// UserAgent returns the User-Agent for outbound requests made by program.
func UserAgent(program string) string {
	return program + "/" + Version
}

// LogAttrs groups the build fields for a start-up log line.
func LogAttrs() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Revision()),
	)
}
