// This file is part of Gopher2e.
//
// Gopher2e is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2e is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2e.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the application name and build details. The version
// number is set by the linker (-ldflags "-X ...version.number=v0.1.0"). In all
// other cases the version is derived from the module's build information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher2e"

// set by the linker
var number string

// revision is the vcs revision, suffixed with "+dirty" if the working tree
// had uncommitted changes when built
var revision string

// version is "unreleased" if built from a vcs checkout without a number. it
// is "local" if there is no vcs information at all, as happens with "go run"
var version string

// Version returns the version string, the revision string and whether this
// is a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line summary suitable for the VERSION mode and the
// monitor banner.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s) %s", ApplicationName, v, r, runtime.Version())
}

func init() {
	revision, version = fromBuildInfo(number)
}

func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return rev, number
	case vcs:
		return rev, "unreleased"
	}
	return rev, "local"
}
