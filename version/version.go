// Copyright 2024 Tamás Gulácsi .All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package version tells which build of the main module is running.
package version

import (
	"log/slog"
	"runtime/debug"
)

// Main returns the main module's path@version, or path@revision-time for VCS builds.
func Main() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return ""
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) string {
	var vcsRev, vcsTime, vcsModified string
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			vcsRev = kv.Value
		case "vcs.time":
			vcsTime = kv.Value
		case "vcs.modified":
			vcsModified = kv.Value
		}
	}
	path := info.Main.Path
	if path == "" {
		path = info.Path
	}
	if vcsRev == "" {
		if vcsTime == "" && vcsModified == "" {
			slog.Debug("version.Main no vcs info", "path", path, "version", info.Main.Version)
		}
		return path + "@" + info.Main.Version
	}
	if vcsModified == "false" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return path + "@" + info.Main.Version
	}
	if vcsModified == "false" {
		return path + "@" + vcsRev
	}
	return path + "@" + vcsRev + "-" + vcsTime
}
