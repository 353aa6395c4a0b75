// Package ecjp is the top-level aggregator: version information and the
// ReadKey convenience that composes slotscan's key lookup with walk's
// value extraction. It lives above both packages (rather than inside
// slotscan) so that slotscan need not import walk, keeping the two
// packages' dependency edge one-directional.
package ecjp

import "fmt"

const (
	versionMajor = 1
	versionMinor = 0
	versionPatch = 0
)

// Version returns the module's semantic version, mirroring ecjp_get_version.
func Version() (major, minor, patch int) {
	return versionMajor, versionMinor, versionPatch
}

// VersionString renders Version as "major.minor.patch", mirroring
// ecjp_get_version_string.
func VersionString() string {
	return fmt.Sprintf("%d.%d.%d", versionMajor, versionMinor, versionPatch)
}
