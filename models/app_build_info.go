// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo is the version stamp injected into the client binary with
// -ldflags. Empty values are reported as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) Version() string { return a.version }

func (a AppBuildInfo) Date() string { return a.date }

func (a AppBuildInfo) Commit() string { return a.commit }

// String renders the stamp on one line, e.g. "v1.2.0 (abc123, 2026-01-02)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.version, a.commit, a.date)
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
