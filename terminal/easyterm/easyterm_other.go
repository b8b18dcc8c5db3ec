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

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package easyterm

import (
	"os"

	"github.com/jetsetilly/gopher2e/curated"
	"golang.org/x/term"
)

// Terminal on platforms without termios. Mode changes are ignored.
type Terminal struct {
	output *os.File
}

// Initialise the Terminal. The input file must be a terminal.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil || outputFile == nil {
		return curated.Errorf(TerminalError, "input and output files required")
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return curated.Errorf(TerminalError, "input is not a terminal")
	}
	pt.output = outputFile
	return nil
}

// CleanUp does nothing on this platform.
func (pt *Terminal) CleanUp() {}

// UpdateGeometry does nothing on this platform.
func (pt *Terminal) UpdateGeometry() error { return nil }

// Geometry returns the dimensions of the output terminal.
func (pt *Terminal) Geometry() Geometry {
	w, h, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return Geometry{Cols: 80, Rows: 24}
	}
	return Geometry{Cols: w, Rows: h}
}

// CanonicalMode does nothing on this platform.
func (pt *Terminal) CanonicalMode() {}

// RawMode does nothing on this platform.
func (pt *Terminal) RawMode() {}

// CBreakMode does nothing on this platform.
func (pt *Terminal) CBreakMode() {}

// Flush does nothing on this platform.
func (pt *Terminal) Flush() error { return nil }

// SuspendProcess does nothing on this platform.
func SuspendProcess() {}
