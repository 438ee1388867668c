// Package version carries the build identity, overridden at link time via
// -ldflags "-X github.com/farcloser/cambium/version.name=... etc".
package version

//nolint:gochecknoglobals // build identity, set by the linker
var (
	name     = "cambium"
	version  = "0.0.0-dev"
	revision = "unknown"
)

// Name returns the product name.
func Name() string {
	return name
}

// Version returns the semantic version of the build.
func Version() string {
	return version
}

// Commit returns the VCS revision the build was produced from.
func Commit() string {
	return revision
}
