// Package version holds build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/sydlexius/crossref/internal/version.Version=v1.2.0"
package version

import "runtime/debug"

// Set at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

func init() {
	if Commit != "unknown" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Commit = s.Value
		}
	}
}
