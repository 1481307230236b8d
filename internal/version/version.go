// Package version exposes the nxreport build version.
package version

import "runtime/debug"

// version is set at build time with -ldflags "-X .../internal/version.version=1.2.3".
var version = ""

// GetVersion returns the build version, falling back to module build info.
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
