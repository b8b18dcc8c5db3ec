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

// Package memory implements the Apple II memory map. Every access made by the
// CPU is routed through the Read() and Write() functions of the Memory type.
//
// The address space is divided into the areas defined in the memorymap
// package. The RAM areas are resolved against main or auxiliary RAM and the
// language card according to the current SoftSwitches. Accesses to the I/O
// page change the switches or are forwarded to a Peripheral attached to one
// of the seven slots. The slot ROM and expansion ROM areas are resolved
// against the peripherals or the internal ROM on IIe models.
//
// Every access is total. Addresses with nothing behind them return the fill
// value of 0xff.
//
// The Peek() and Poke() functions implement the cpubus.Debugger interface and
// never change the state of the memory map or of any peripheral.
//
// The ROM type handles the different ROM packages. A ROM is created with
// NewROM() and given to the memory map with Reset(). A ROM with an unusable
// size results in a RomError.
package memory
