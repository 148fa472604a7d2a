package version

import (
	"regexp"
	"runtime/debug"
	"strings"
)

const devel = "(devel)"

// pseudoVersion matches the timestamp-hash tail of a Go pseudo-version.
var pseudoVersion = regexp.MustCompile(`-(?:0\.)?\d{14}-[0-9a-fA-F]{12,}$`)

// String reports the module version stamped into the binary, or "(devel)"
// for local and untagged builds.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return normalize(info.Main.Version)
}

func normalize(v string) string {
	if v == "" || v == devel || strings.Contains(v, "+dirty") {
		return devel
	}
	base, _, _ := strings.Cut(v, "+")
	if pseudoVersion.MatchString(base) {
		return devel
	}
	return v
}
