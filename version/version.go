// This file is part of Stagehand.
//
// Stagehand is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stagehand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stagehand.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the application name and the version of the
// binary.
//
// A release build sets the version number with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/stagehand/version.number=v0.1.0"
//
// Other builds are described as "unreleased" if the build has vcs information
// and "local" if it has none, as happens with "go run".
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Stagehand"

// set by the linker
var number string

type build struct {
	version   string
	revision  string
	toolchain string
}

var current = sync.OnceValue(func() build {
	b := build{
		version:   "local",
		revision:  "no revision information",
		toolchain: "unknown toolchain",
	}

	info, ok := debug.ReadBuildInfo()
	if ok {
		b.toolchain = info.GoVersion

		var dirty bool
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				b.version = "unreleased"
			case "vcs.revision":
				if s.Value != "" {
					b.revision = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
		if dirty {
			b.revision += "+dirty"
		}
	}

	if number != "" {
		b.version = number
	}

	return b
})

// Version returns the version string, the revision string and whether this is
// a numbered release version.
func Version() (string, string, bool) {
	b := current()
	return b.version, b.revision, number != ""
}

// Toolchain returns the Go version used to build the binary.
func Toolchain() string {
	return current().toolchain
}

// String returns the application name and version as a single string.
func String() string {
	return fmt.Sprintf("%s %s", ApplicationName, current().version)
}
