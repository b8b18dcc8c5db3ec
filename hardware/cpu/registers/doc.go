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

// Package registers implements the three types of registers found in the 6502
// family. The three types are the: program counter, status register and the 8
// bit accumulator type used for A, X, Y and the stack pointer.
//
// The 8 bit registers implemented as the Register type, define all the basic
// operations available to the CPU: load, add, subtract, logical operations and
// shifts/rotates. In addition it implements the tests required for status
// updates: is the value zero, is the number negative or is the overflow bit
// set.
//
// Decimal mode addition and subtraction is implemented twice. Once for the
// NMOS 6502, where the N, V and Z flags do not reflect the decimal result, and
// once for the CMOS 65C02, where they do. The algorithms are those described
// by Bruce Clark in "Decimal Mode" (6502.org tutorial, appendix A).
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly. For instance, in the CPU, we might have this sequence of
// function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
package registers
