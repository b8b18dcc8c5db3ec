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

//go:build linux || darwin || freebsd || netbsd || openbsd

package easyterm

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated by the signal handler
	crit     sync.Mutex
	geometry Geometry
}

// Initialise the Terminal. The input file must be a terminal.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil || outputFile == nil {
		return curated.Errorf(TerminalError, "input and output files required")
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return curated.Errorf(TerminalError, "input is not a terminal")
	}

	pt.input = inputFile
	pt.output = outputFile

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	_ = pt.UpdateGeometry()

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp restores canonical mode and stops the signal handler.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	w, h, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}

	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.geometry = Geometry{Cols: w, Rows: h}

	return nil
}

// Geometry returns the most recent dimensions of the output terminal.
func (pt *Terminal) Geometry() Geometry {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	return pt.geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// SuspendProcess sends the suspend signal to the parent process. Needed when
// the terminal is in raw mode and the user presses the suspend key.
func SuspendProcess() {
	p, err := os.FindProcess(os.Getppid())
	if err == nil {
		_ = p.Signal(syscall.SIGTSTP)
	}
}
