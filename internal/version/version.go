package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// MinServerVersion is the oldest Appwrite server this client is tested against.
// The /ping endpoint first shipped in 1.6.
const MinServerVersion = "1.6.0"

// ResponseFormat is sent as X-Appwrite-Response-Format.
const ResponseFormat = "1.6.0"

// EnsureVPrefix adds a "v" prefix if missing; golang.org/x/mod/semver requires it.
func EnsureVPrefix(s string) string {
	if strings.HasPrefix(s, "v") {
		return s
	}
	return "v" + s
}

// SupportsServer reports whether serverVersion is at least MinServerVersion.
// Unparseable versions are treated as supported.
func SupportsServer(serverVersion string) bool {
	v := EnsureVPrefix(serverVersion)
	if !semver.IsValid(v) {
		return true
	}
	return semver.Compare(v, EnsureVPrefix(MinServerVersion)) >= 0
}
