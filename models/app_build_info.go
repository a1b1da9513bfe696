// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const notAvailable = "N/A"

// AppBuildInfo is the version triple stamped into a binary with -ldflags.
// Blank values fall back to the VCS stamps recorded by the Go toolchain and
// then to "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo builds an [AppBuildInfo], filling gaps from debug.ReadBuildInfo.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return newAppBuildInfo(version, date, commit, bi)
	}
	return newAppBuildInfo(version, date, commit, nil)
}

func newAppBuildInfo(version, date, commit string, bi *debug.BuildInfo) AppBuildInfo {
	info := AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
	if bi != nil {
		if info.version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.commit == "":
				info.commit = s.Value
			case s.Key == "vcs.time" && info.date == "":
				info.date = s.Value
			}
		}
	}
	return info
}

func orNA(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

// BuildVersion returns the release version or "N/A".
func (a AppBuildInfo) BuildVersion() string { return orNA(a.version) }

// BuildDate returns the build timestamp or "N/A".
func (a AppBuildInfo) BuildDate() string { return orNA(a.date) }

// BuildCommit returns the source commit or "N/A".
func (a AppBuildInfo) BuildCommit() string { return orNA(a.commit) }

// String renders the three lines printed by `version` and at server start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}
