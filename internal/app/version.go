package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/moodbook-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
// When Commit is not injected, the VCS revision stamped by the go tool is used.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported by /health and startup logs.
func BuildVersion() string {
	return formatVersion(Version, resolveCommit(Commit, debug.ReadBuildInfo), BuildTime)
}

func formatVersion(version, commit, built string) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func resolveCommit(commit string, readInfo func() (*debug.BuildInfo, bool)) string {
	if commit != "unknown" {
		return commit
	}
	info, ok := readInfo()
	if !ok {
		return commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return commit
}
