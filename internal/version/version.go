// Package version provides version information for the application.
//
// The values are plain variables so release builds can override them with
// ldflags -X.
package version

var (
	// Version is the semantic version of the build.
	Version = "0.1.0-dev"

	// Revision is the VCS revision the build was produced from.
	Revision = "unknown"
)
