// Package version provides build version information for lsext.
// This is a separate package so cli and cmd/lsext can share it without an import cycle.
package version

// Version is the build version string, set by ldflags during build.
// Format: vX.Y.Z or vX.Y.Z-dev for development builds.
var Version = "v1.0.0-dev"

// BuildTime is the build timestamp, set by ldflags during build.
var BuildTime = "unknown"

// String returns the version line shown by --version.
func String() string {
	return Version + " (" + BuildTime + ")"
}
