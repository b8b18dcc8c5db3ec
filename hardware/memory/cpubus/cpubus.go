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

// Package cpubus defines the interface between the CPU and the memory map.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every address in the 64K address space is valid and there is no error
// path. Reading or writing an address may trigger a side effect, such as the
// toggling of a soft switch.
//
// The CPU makes the same bus accesses as the real hardware, including the
// dummy reads and writes that occur during some addressing modes. Memory
// implementations will see those accesses and should act on them.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Debugger defines the operations that access memory without triggering any
// side effects. Used by monitors, tests and debugging tools.
type Debugger interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. Also used by the
// BRK instruction.
const IRQ = uint16(0xfffe)
