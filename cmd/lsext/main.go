// lsext - list the files in a directory that end with an extension
//
// Build with: go build -ldflags "-X main.Version=v1.0.0 -X main.BuildTime=$(date -u +%F)" ./cmd/lsext
package main

import (
	"os"

	"github.com/rescale/lsext/internal/cli"
	"github.com/rescale/lsext/internal/version"
)

// Version information
var (
	Version   = "v1.0.0-dev"
	BuildTime = "unknown"
)

func main() {
	// internal/version is the single source for all packages
	version.Version = Version
	version.BuildTime = BuildTime

	os.Exit(cli.Execute())
}
