// Package version holds build metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/banshee-data/canvehicle/internal/version.Version=v0.3.0"
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String formats the build metadata for a command's version output.
func String(name string) string {
	return fmt.Sprintf("%s %s (%s) built %s", name, Version, GitSHA, BuildTime)
}
