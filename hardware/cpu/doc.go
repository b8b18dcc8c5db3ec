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

// Package cpu emulates the 6502 family of microprocessors found in the Apple
// II range of computers. Two variants are supported: the NMOS 6502 of the
// Apple II and II+ and the CMOS 65C02 of the enhanced IIe. Like all 8-bit
// processors of the era, the CPU executes instructions according to the single
// byte value read from an address pointed to by the program counter. This
// single byte is the opcode and is looked up in the instruction table for the
// variant. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface. The interface defines the memory operations
// required by the CPU. See the cpubus package for details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle boundary
// of the instruction.
//
// Let's assume mem is an instance of the cpubus.Memory interface loaded with
// 6502 instructions.
//
//	mc := cpu.NewCPU(mem, cpu.NMOS6502)
//	mc.Reset()
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		mc.ExecuteInstruction(func() {
//			numCycles++
//		})
//		numInstructions++
//	}
//
// The above program does nothing interesting except to show how
// ExecuteInstruction() can be used to pump information to a callback
// function. The Apple II emulation uses this to advance the disk controller
// and the machine clock on every CPU cycle.
//
// Every memory access made by the real CPU is also made by the emulated CPU,
// including the dummy reads and writes of some addressing modes. This matters
// on the Apple II because reading or writing a soft switch changes the state
// of the machine.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be inspected for information about the last instruction
// executed, or about the current instruction being executed if accessed from
// ExecuteInstruction()'s callback function. See the execution package for more
// information. Very useful for debuggers.
//
// Instruction execution never fails. Every opcode is defined for both variants
// and the memory interface has no error path. An NMOS JAM instruction halts the
// CPU until the next Reset(). Each subsequent call to ExecuteInstruction()
// consumes one cycle.
package cpu
