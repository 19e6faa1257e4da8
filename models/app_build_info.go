// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotAvailable stands in for build metadata that was not injected at link
// time.
const NotAvailable = "N/A"

// AppBuildInfo is the linker-injected metadata of a journal binary. The zero
// value reports every field as [NotAvailable].
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: version,
		date:    date,
		commit:  commit,
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.version)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.date)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.commit)
}

// HasVersion reports whether a version was stamped into the binary.
func (a AppBuildInfo) HasVersion() bool {
	return a.version != "" && a.version != NotAvailable
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
