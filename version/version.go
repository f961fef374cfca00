// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/gophernes/version.number=v0.1.0"
//
// Without a version number the build information embedded by the Go
// toolchain is used to describe the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "GopherNES"

// set with the -X linker flag.
var number string

// Version returns the version string and the VCS revision. The version is
// "unreleased" for builds from a repository without a version number and
// "local" for builds with no VCS information.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionString(number, false), "no revision information"
	}
	return describe(number, info.Settings)
}

func describe(number string, settings []debug.BuildSetting) (string, string) {
	var vcs, modified bool
	revision := "no revision information"

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	return versionString(number, vcs), revision
}

func versionString(number string, vcs bool) string {
	switch {
	case number != "":
		return number
	case vcs:
		return "unreleased"
	}
	return "local"
}

// String returns the application name and version in a form suitable for a
// banner.
func String() string {
	v, r := Version()
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
