// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/reclass/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/reclass/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/reclass/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import (
	"fmt"
	"strconv"
)

// Application identity written into the leading comments of saved projects.
const (
	ApplicationName = "reclass"
	Author          = "matzehuels"
	HomepageURL     = "https://github.com/matzehuels/reclass"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	// Set via ldflags: -X github.com/matzehuels/reclass/pkg/buildinfo.Version=...
	Version = "dev"

	// Commit is the git commit SHA.
	// Set via ldflags: -X github.com/matzehuels/reclass/pkg/buildinfo.Commit=...
	Commit = "none"

	// Date is the build timestamp.
	// Set via ldflags: -X github.com/matzehuels/reclass/pkg/buildinfo.Date=...
	Date = "unknown"
)

// Platform returns the platform tag of the running binary: "x64" on 64-bit
// targets and "x86" otherwise.
func Platform() string {
	if strconv.IntSize == 64 {
		return "x64"
	}
	return "x86"
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
