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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides terminal geometry (via "golang.org/x/term") and wraps the termios
// functions in methods with friendlier names.
//
// The Translate() function converts terminal input into Apple II key codes.
package easyterm

// TerminalError is the pattern used for errors originating in the package.
const TerminalError = "easyterm: %v"

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Cols int
	Rows int
}
