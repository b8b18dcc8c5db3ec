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

// Package monitor is a command line front-end for the emulated machine. The
// commands allow the machine to be stepped and run, memory to be examined and
// changed, and disks to be inserted, ejected and saved.
//
// The Run() function reads commands with "github.com/chzyer/readline". The
// Process() function handles a single command and can be used without a
// terminal.
package monitor
