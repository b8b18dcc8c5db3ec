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

// Package paths contains functions to prepare paths to gopher2e resources.
// The ResourcePath() function modifies the supplied resource string such that
// following will return the path to the preferences file.
//	d, err := paths.ResourcePath("", "preferences")
// In non-release builds the base path is ".gopher2e" in the current working
// directory. Release builds (built with the "release" tag) use the user's
// config directory as returned by os.UserConfigDir().
package paths
