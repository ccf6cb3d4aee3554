package version

import (
	"runtime/debug"
	"strings"
)

// These can be set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String falls back to the module version recorded by `go install` when no
// version was stamped at link time.
func String() string {
	v := Version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	parts := []string{"pocket " + v}
	if Commit != "" {
		parts = append(parts, "commit="+Commit)
	}
	if Date != "" {
		parts = append(parts, "date="+Date)
	}
	return strings.Join(parts, " ")
}
