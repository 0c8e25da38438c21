package vxmcp

import (
	"fmt"
	"runtime"
)

// clientName identifies this client in request metadata.
const clientName = "vx-mcp"

var (
	// Version is the client semantic version (injected at build time optionally).
	Version = "1.2.0"
	// GitCommit is the git SHA (inject via -ldflags at build time).
	GitCommit = "unknown"
	// BuildDate is the build timestamp (inject via -ldflags).
	BuildDate = "unknown"
	// GoVersion records the Go toolchain version used.
	GoVersion = runtime.Version()
)

// userAgent is the client identifier + version tag attached to every request.
func userAgent() string {
	return fmt.Sprintf("%s/%s", clientName, Version)
}

// GetVersion returns a human-readable version string.
func GetVersion() string {
	return fmt.Sprintf("vx-mcp v%s (commit: %s, built: %s, go: %s)",
		Version, GitCommit, BuildDate, GoVersion)
}

// GetVersionInfo returns version metadata as a map for logging / metrics.
func GetVersionInfo() map[string]string {
	return map[string]string{
		"version":    Version,
		"commit":     GitCommit,
		"build_date": BuildDate,
		"go_version": GoVersion,
	}
}
