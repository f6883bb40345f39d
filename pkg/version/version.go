// Package version exposes build information set at link time.
package version

// Set via -ldflags "-X github.com/rshade/collegelist/pkg/version.version=...".
//
//nolint:gochecknoglobals // Link-time variables.
var (
	version = "dev"
	commit  = "none"
)

// GetVersion returns the release version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// GetCommit returns the source commit the binary was built from.
func GetCommit() string {
	return commit
}
