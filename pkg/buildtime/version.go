package buildtime

import (
	"runtime/debug"
)

// set at build time with
//
//	-ldflags "-X github.com/ragamarkely/todo-app/pkg/buildtime.version=v1.0.0"
var version = "dev"

// set at build time like version. When empty, vcs.revision in build info is used.
var revision = ""

// version string when this app has been built.
func VERSION() string {
	return version
}

func GIT_REVISION() string {
	if revision != "" {
		return revision
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

func VersionString() string {
	return VERSION() + " (commit: " + GIT_REVISION() + ")"
}
