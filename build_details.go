package mcpgen

import (
	"fmt"
	"runtime"
)

// Build metadata, overridden with -ldflags "-X" at release time.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the release version, or "dev" for source builds.
func Version() string { return version }

// Commit returns the short git hash of the build, or "unknown".
func Commit() string { return commit }

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string { return buildTime }

// GoVersion returns the toolchain version the binary was built with.
func GoVersion() string { return runtime.Version() }

// BuildInfo renders all build metadata as "Key: value" lines, as printed by
// "mcpgen version --verbose".
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
