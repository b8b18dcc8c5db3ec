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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher2e/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2e/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2e/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2e/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2e/logger"
)

// Variant of the 6502 family being emulated.
type Variant int

// List of supported variants.
const (
	NMOS6502 Variant = iota
	CMOS65C02
)

func (v Variant) String() string {
	switch v {
	case NMOS6502:
		return "6502"
	case CMOS65C02:
		return "65C02"
	}
	return "unknown variant"
}

// the stack is fixed to page one.
const stackPage = uint16(0x0100)

// CPU implements the 6502 and the 65C02. Register logic is implemented by the
// Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8  registers.Register
	acc16 registers.ProgramCounter

	mem          cpubus.Memory
	variant      Variant
	instructions *instructions.Table

	// cycleCallback is called for additional emulator functionality
	cycleCallback func()

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset
	LastResult execution.Result

	// the cpu has encounted a JAM instruction. requires a Reset()
	Killed bool

	// suppress log entries made by the CPU
	Quiet bool

	// the IRQ line is level triggered and is serviced for as long as it is
	// raised and interrupts are not disabled
	irq bool

	// the NMI line is edge triggered. nmi is true when an edge has been seen
	// but not yet serviced
	nmi bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU should be Reset() before use.
func NewCPU(mem cpubus.Memory, variant Variant) *CPU {
	mc := &CPU{
		mem:     mem,
		variant: variant,
		PC:      registers.NewProgramCounter(0),
		A:       registers.NewRegister(0, "A"),
		X:       registers.NewRegister(0, "X"),
		Y:       registers.NewRegister(0, "Y"),
		SP:      registers.NewRegister(0, "SP"),
		Status:  registers.NewStatusRegister(),
		acc8:    registers.NewRegister(0, "accumulator"),
		acc16:   registers.NewProgramCounter(0),
	}

	if variant == CMOS65C02 {
		mc.instructions = instructions.CMOS()
	} else {
		mc.instructions = instructions.NMOS()
	}

	return mc
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return !mc.Quiet
}

// Variant returns the 6502 variant being emulated.
func (mc *CPU) Variant() Variant {
	return mc.variant
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.cycleCallback = nil
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the address stored
// in the reset vector.
//
// Interrupts are disabled and decimal mode is cleared for both variants. The
// stack pointer is left at 0xfd, which is where the three suppressed stack
// pushes of the reset sequence leave it on real hardware.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.irq = false
	mc.nmi = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.Status.DecimalMode = false

	mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	lo := mc.mem.Read(indirectAddress)
	hi := mc.mem.Read(indirectAddress + 1)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// RaiseIRQ asserts the IRQ line. The interrupt is serviced at the next
// instruction boundary if interrupts are not disabled. The line remains
// asserted until ClearIRQ() is called.
func (mc *CPU) RaiseIRQ() {
	mc.irq = true
}

// ClearIRQ deasserts the IRQ line.
func (mc *CPU) ClearIRQ() {
	mc.irq = false
}

// RaiseNMI signals an edge on the NMI line. The interrupt is serviced at the
// next instruction boundary and cannot be masked.
func (mc *CPU) RaiseNMI() {
	mc.nmi = true
}

// endCycle marks the end of a CPU cycle
//
// side-effects:
//   - calls cycleCallback
func (mc *CPU) endCycle() {
	mc.LastResult.Cycles++
	mc.cycleCallback()
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16) uint8 {
	val := mc.mem.Read(address)

	// +1 cycle
	mc.endCycle()

	return val
}

// write8Bit writes 8 bits to the specified address
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write8Bit(address uint16, value uint8) {
	mc.mem.Write(address, value)

	// +1 cycle
	mc.endCycle()
}

// read16Bit returns 16bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16Bit(address uint16) uint16 {
	// +1 cycle
	lo := mc.read8Bit(address)

	// +1 cycle
	hi := mc.read8Bit(address + 1)

	return (uint16(hi) << 8) | uint16(lo)
}

// read16BitZeroPage returns the 16bit value from the specified zero page
// address. the high byte is read from the start of the zero page if the low
// byte is at the end of the page
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	// +1 cycle
	lo := mc.read8Bit(uint16(address))

	// +1 cycle
	hi := mc.read8Bit(uint16(address + 1))

	return (uint16(hi) << 8) | uint16(lo)
}

// push value onto the stack
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) push(value uint8) {
	// +1 cycle
	mc.write8Bit(stackPage|mc.SP.Address(), value)
	mc.SP.Add(0xff, false)
}

// pull value from the stack
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) pull() uint8 {
	mc.SP.Add(1, false)

	// +1 cycle
	return mc.read8Bit(stackPage | mc.SP.Address())
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	newOpcode
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) uint8 {
	v := mc.mem.Read(mc.PC.Address())

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case brk:
		// the BRK command causes the PC to advance by two but that case we
		// don't want to record that the additional byte has been read
		mc.LastResult.ByteCount--

	case newOpcode:
		// every opcode is defined in both instruction tables
		mc.LastResult.Defn = &mc.instructions[v]

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	// +1 cycle
	mc.endCycle()

	return v
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field, once before each call to cycleCallback
func (mc *CPU) read16BitPC() uint16 {
	// +1 cycle
	mc.read8BitPC(loNibble)

	// +1 cycle
	mc.read8BitPC(hiNibble)

	return mc.LastResult.InstructionData
}

// phantomIndexedRead is the extra read performed by indexed addressing modes
// when the page boundary is crossed or when the instruction writes to memory.
// the NMOS 6502 reads from the address before the high byte has been fixed.
// the 65C02 avoids reading from an invalid address by reading the last
// instruction byte again when a page boundary has been crossed. on the NMOS
// part a read of the wrong page that lands in $c0xx is noted as a bug because
// it reaches the soft switches
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) phantomIndexedRead(base uint16, address uint16) {
	if mc.variant == CMOS65C02 && base&0xff00 != address&0xff00 {
		// +1 cycle
		mc.read8Bit(mc.PC.Address() - 1)
		return
	}

	phantom := (base & 0xff00) | (address & 0x00ff)
	if phantom != address && phantom&0xff00 == 0xc000 {
		mc.LastResult.CPUBug = execution.PhantomIOAccess
	}

	// +1 cycle
	mc.read8Bit(phantom)
}

func (mc *CPU) branch(flag bool, address uint16) {
	// in the case of branchng (relative addressing) we've read an 8bit value
	// rather than a 16bit value to use as the "address". we need to make sure
	// the sign bit of the 8bit value has been propogated into the
	// most-significant bits of the 16bit value.
	address &= 0x00ff
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	// note branching result
	mc.LastResult.BranchSuccess = flag

	if flag {
		// note current PC for reference
		oldPC := mc.PC.Address()

		// phantom read
		// +1 cycle
		mc.read8Bit(mc.PC.Address())

		// add LSB to PC
		// this is a bit weird but without implementing the PC differently (with
		// two 8bit bytes perhaps) this is the only way I can see how to do it with
		// the desired cycle accuracy:
		//  o Add full (sign extended) 16bit address to PC
		//  o note whether a page fault has occurred
		//  o restore the MSB of the PC using the MSB of the old PC value
		mc.PC.Add(address)
		mc.LastResult.PageFault = oldPC&0xff00 != mc.PC.Address()&0xff00
		mc.PC.Load(oldPC&0xff00 | mc.PC.Address()&0x00ff)

		// check to see whether branching has crossed a page
		if mc.LastResult.PageFault {
			// phantom read
			// +1 cycle
			mc.read8Bit(mc.PC.Address())

			// correct program counter
			if address&0xff00 == 0xff00 {
				mc.PC.Add(0xff00)
			} else {
				mc.PC.Add(0x0100)
			}
		}
	}
}

// serviceInterrupt pushes the PC and status register onto the stack and loads
// the PC from the vector. the sequence is the same as for BRK except that the
// break bit of the pushed status register is clear and the PC is not advanced
func (mc *CPU) serviceInterrupt(vector uint16, interrupt execution.Interrupt) {
	mc.LastResult.Interrupt = interrupt

	// two phantom reads of the instruction that would have been executed
	// +2 cycles
	mc.read8Bit(mc.PC.Address())
	mc.read8Bit(mc.PC.Address())

	// +3 cycles
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address()))
	mc.push(mc.Status.Value() &^ registers.BreakBit)

	mc.Status.InterruptDisable = true
	if mc.variant == CMOS65C02 {
		mc.Status.DecimalMode = false
	}

	// +2 cycles
	mc.PC.Load(mc.read16Bit(vector))

	mc.LastResult.Final = true
}

// adc is the add with carry operation. shared by ADC and RRA
func (mc *CPU) adc(value uint8) {
	if !mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		return
	}

	if mc.variant == CMOS65C02 {
		mc.Status.Carry, mc.Status.Overflow = mc.A.AddDecimalCMOS(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

		// +1 cycle
		mc.LastResult.DecimalModeCycle = true
		mc.endCycle()
		return
	}

	mc.Status.Carry,
		mc.Status.Zero,
		mc.Status.Overflow,
		mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
}

// sbc is the subtract with carry operation. shared by SBC and ISC
func (mc *CPU) sbc(value uint8) {
	if !mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		return
	}

	if mc.variant == CMOS65C02 {
		mc.Status.Carry, mc.Status.Overflow = mc.A.SubtractDecimalCMOS(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

		// +1 cycle
		mc.LastResult.DecimalModeCycle = true
		mc.endCycle()
		return
	}

	mc.Status.Carry,
		mc.Status.Zero,
		mc.Status.Overflow,
		mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
}

// compare is the basis of CMP, CPX, CPY and DCP. maybe surprisingly, compare
// can be implemented with binary subtract even if decimal mode is active (the
// meaning is the same)
func (mc *CPU) compare(reg uint8, value uint8) {
	r := mc.acc8
	r.Load(reg)
	mc.Status.Carry, _ = r.Subtract(value, true)
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenience do-nothing function.
func NilCycleCallback() {
}

// ExecuteInstruction steps CPU forward one instruction and returns the number
// of cycles consumed. The basic process when executing an instruction is this:
//
//  1. service any pending interrupt instead of executing an instruction
//  2. read opcode and look up instruction definition
//  3. read operands (if any) according to the addressing mode of the instruction
//  4. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles, except for the single cycle NOPs of
// the 65C02. After each cycle, the cycleCallback() function is run, thereby
// allowing the rest of the Apple II hardware to operate.
//
// The cycleCallback argument should *never* be nil. Use the NilCycleCallback()
// function in this package if you want a nil effect.
func (mc *CPU) ExecuteInstruction(cycleCallback func()) int {
	// update cycle callback
	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// a halted CPU does nothing but still consumes time
	if mc.Killed {
		// +1 cycle
		mc.endCycle()
		mc.LastResult.Final = true
		return mc.LastResult.Cycles
	}

	// interrupts are checked at the instruction boundary. NMI has priority
	if mc.nmi {
		mc.nmi = false
		mc.serviceInterrupt(cpubus.NMI, execution.NMI)
		return mc.LastResult.Cycles
	}
	if mc.irq && !mc.Status.InterruptDisable {
		mc.serviceInterrupt(cpubus.IRQ, execution.IRQ)
		return mc.LastResult.Cycles
	}

	// read next instruction (end cycle part of read8BitPC_opcode)
	// +1 cycle
	mc.read8BitPC(newOpcode)
	defn := mc.LastResult.Defn

	// address is the actual address to use to access memory (after any indexing
	// has taken place)
	var address uint16

	// the address before indexing. required by the SHA family of instructions
	var base uint16

	// whether indexing caused the high byte of the address to change
	var crossed bool

	// value is nil if addressing mode is implied and is read from the program for
	// immediate/relative mode, and from non-program memory for all other modes
	// note that for instructions which are read-modify-write, the value will
	// change during execution and be used to write back to memory
	var value uint8

	// get address to use when reading/writing from/to memory (note that in the
	// case of immediate addressing, we are actually getting the value to use
	// in the instruction, not the address).
	//
	// we also take the opportunity to set the InstructionData value for the
	// Result and whether a page fault has occurred. note that we don't do
	// this in the case of JSR
	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes. however, the next
		// instruction is read but the PC is not incremented

		if defn.Operator == instructions.Brk {
			// BRK is unusual in that it increases the PC by two bytes despite
			// being an implied addressing instruction
			// +1 cycle
			mc.read8BitPC(brk)
		} else if defn.Cycles > 1 {
			// phantom read. the single cycle NOPs of the 65C02 do not do this
			// +1 cycle
			mc.read8Bit(mc.PC.Address())
		}

	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program
		// therefore, we don't set the address and we read the value through the PC

		// +1 cycle
		value = mc.read8BitPC(loNibble)

	case instructions.Relative:
		// relative addressing is only used for branch instructions, the address
		// is an offset value from the current PC position

		// most of the addressing cycles for this addressing mode are consumed
		// in the branch() function

		// +1 cycle
		mc.read8BitPC(loNibble)
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		if defn.Effect != instructions.Subroutine {
			// +2 cycles
			address = mc.read16BitPC()
		}

		// else... for JSR, addresses are read slightly differently so we defer
		// this part of the operation to the operator switch below

	case instructions.ZeroPage:
		// +1 cycle
		mc.read8BitPC(loNibble)
		address = mc.LastResult.InstructionData

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command

		// +2 cycles
		indirectAddress := mc.read16BitPC()

		if mc.variant == CMOS65C02 {
			// the 65C02 fixes the page wrapping bug at the cost of an
			// additional cycle
			// +1 cycle
			mc.read8Bit(mc.PC.Address() - 1)

			// +2 cycles
			address = mc.read16Bit(indirectAddress)
		} else {
			if indirectAddress&0x00ff == 0x00ff {
				mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
			}

			// in the bug path, the lower byte of the indirect address is on a
			// page boundary. because of the bug we must read high byte of JMP
			// address from the zero byte of the same page (rather than the
			// zero byte of the next page)
			// +2 cycles
			lo := mc.read8Bit(indirectAddress)
			hi := mc.read8Bit((indirectAddress & 0xff00) | ((indirectAddress + 1) & 0x00ff))
			address = (uint16(hi) << 8) | uint16(lo)
		}

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		indirectAddress := mc.read8BitPC(loNibble)

		// phantom read before adjusting the index
		// +1 cycle
		mc.read8Bit(uint16(indirectAddress))

		// using 8bit addition because of the indirect addressing bug - we
		// don't want indexed address to extend past the first page
		mc.acc8.Load(mc.X.Value())
		mc.acc8.Add(indirectAddress, false)

		// make a note of indirect addressing bug
		if uint16(indirectAddress)+mc.X.Address() > 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

		// +2 cycles
		address = mc.read16BitZeroPage(mc.acc8.Value())

		// never a page fault wth pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		indirectAddress := mc.read8BitPC(loNibble)

		// +2 cycles
		base = mc.read16BitZeroPage(indirectAddress)

		mc.acc16.Load(mc.Y.Address())
		mc.acc16.Add(base & 0x00ff)
		crossed = mc.acc16.Address()&0xff00 == 0x0100

		// fix MSB of address
		mc.acc16.Add(base & 0xff00)
		address = mc.acc16.Address()

		// check for page fault
		mc.LastResult.PageFault = defn.PageSensitive && crossed
		if mc.LastResult.PageFault || (defn.Effect != instructions.Read && !defn.PageSensitive) {
			// phantom read (always happens for Write and RMW)
			// +1 cycle
			mc.phantomIndexedRead(base, address)
		}

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		// +2 cycles
		base = mc.read16BitPC()

		// add index to LSB of address
		if defn.AddressingMode == instructions.AbsoluteIndexedX {
			mc.acc16.Load(mc.X.Address())
		} else {
			mc.acc16.Load(mc.Y.Address())
		}
		mc.acc16.Add(base & 0x00ff)
		crossed = mc.acc16.Address()&0xff00 == 0x0100

		// fix MSB of address
		mc.acc16.Add(base & 0xff00)
		address = mc.acc16.Address()

		// check for page fault. the penalty for write and RMW instructions is
		// fixed and included in the base cycle count unless the instruction is
		// explicitly page sensitive (the shift instructions on the 65C02)
		mc.LastResult.PageFault = defn.PageSensitive && crossed
		if mc.LastResult.PageFault || (defn.Effect != instructions.Read && !defn.PageSensitive) {
			// phantom read
			// +1 cycle
			mc.phantomIndexedRead(base, address)
		}

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		// +1 cycles
		indirectAddress := mc.read8BitPC(loNibble)

		// phantom read from base address before index adjustment
		// +1 cycles
		mc.read8Bit(uint16(indirectAddress))

		index := mc.X.Value()
		if defn.AddressingMode == instructions.ZeroPageIndexedY {
			index = mc.Y.Value()
		}

		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(index, false)
		address = mc.acc8.Address()

		// make a note of zero page index bug
		if uint16(indirectAddress)+uint16(index) > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageIndirect:
		// +1 cycle
		indirectAddress := mc.read8BitPC(loNibble)

		// +2 cycles
		address = mc.read16BitZeroPage(indirectAddress)

	case instructions.AbsoluteIndexedIndirect:
		// only used by JMP on the 65C02

		// +2 cycles
		indirectAddress := mc.read16BitPC()

		// phantom read while the index is added
		// +1 cycle
		mc.read8Bit(mc.PC.Address() - 1)

		// +2 cycles
		address = mc.read16Bit(indirectAddress + mc.X.Address())

	case instructions.ZeroPageRelative:
		// only used by the BBR and BBS instructions on the 65C02. the value to
		// test is read from the zero page address in the first operand. the
		// second operand is the branch offset

		// +1 cycle
		zp := mc.read8BitPC(loNibble)

		// +1 cycle
		value = mc.read8Bit(uint16(zp))

		// phantom read of the same address
		// +1 cycle
		mc.read8Bit(uint16(zp))

		// +1 cycle
		address = uint16(mc.read8BitPC(hiNibble))

	default:
		panic(fmt.Sprintf("cpu: unknown addressing mode for %s", defn.Mnemonic()))
	}

	// read value from memory using address found in AddressingMode switch above only when:
	// a) addressing mode is not 'implied' or 'immediate'
	//	- for immediate modes, we already have the value in lieu of an address
	//  - for implied modes, we don't need a value
	// b) instruction is 'Read' OR 'ReadWrite'
	//  - for write modes, we only use the address to write a value we already have
	//  - for flow modes, the use of the address is very specific
	if !(defn.AddressingMode == instructions.Implied || defn.AddressingMode == instructions.Immediate) {
		if defn.Effect == instructions.Read {
			// +1 cycle
			value = mc.read8Bit(address)
		} else if defn.Effect == instructions.RMW {
			// +1 cycle
			value = mc.read8Bit(address)

			// the NMOS part writes the unaltered value back to memory while the
			// operation is being performed. the 65C02 reads the value again
			// +1 cycle
			if mc.variant == CMOS65C02 {
				mc.read8Bit(address)
			} else {
				mc.write8Bit(address, value)
			}
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// some NOPs on the 65C02 take longer than the addressing mode implies
		for mc.LastResult.Cycles < defn.Cycles {
			// +1 cycle
			mc.endCycle()
		}

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		// +1 cycle
		mc.push(mc.A.Value())

	case instructions.Phx:
		// +1 cycle
		mc.push(mc.X.Value())

	case instructions.Phy:
		// +1 cycle
		mc.push(mc.Y.Value())

	case instructions.Php:
		// the break bit is always set when the status register is pushed by
		// PHP or BRK
		// +1 cycle
		mc.push(mc.Status.Value() | registers.BreakBit)

	case instructions.Pla, instructions.Plx, instructions.Ply:
		// phantom read of the stack before the stack pointer is incremented
		// +1 cycle
		mc.read8Bit(stackPage | mc.SP.Address())

		// +1 cycle
		value = mc.pull()

		var r *registers.Register
		switch defn.Operator {
		case instructions.Plx:
			r = &mc.X
		case instructions.Ply:
			r = &mc.Y
		default:
			r = &mc.A
		}
		r.Load(value)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Plp:
		// +1 cycle
		mc.read8Bit(stackPage | mc.SP.Address())

		// +1 cycle
		mc.Status.Load(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		// +1 cycle
		mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		// +1 cycle
		mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		// +1 cycle
		mc.write8Bit(address, mc.Y.Value())

	case instructions.Stz:
		// +1 cycle
		mc.write8Bit(address, 0)

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Asl:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ASL()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Lsr:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.LSR()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Ror:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Rol:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Adc:
		mc.adc(value)

	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Inc:
		// INC A on the 65C02 uses implied addressing
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		r.Add(1, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Dec:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		r.Add(0xff, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Cmp:
		mc.compare(mc.A.Value(), value)

	case instructions.Cpx:
		mc.compare(mc.X.Value(), value)

	case instructions.Cpy:
		mc.compare(mc.Y.Value(), value)

	case instructions.Bit:
		r := mc.acc8
		r.Load(value)

		// BIT #imm on the 65C02 only affects the zero flag
		if defn.AddressingMode != instructions.Immediate {
			mc.Status.Sign = r.IsNegative()
			mc.Status.Overflow = r.IsBitV()
		}
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.Tsb:
		r := mc.acc8
		r.Load(value)
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()
		value |= mc.A.Value()

	case instructions.Trb:
		r := mc.acc8
		r.Load(value)
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()
		value &^= mc.A.Value()

	case instructions.Rmb:
		value &^= 0x01 << ((defn.OpCode >> 4) & 0x07)

	case instructions.Smb:
		value |= 0x01 << ((defn.OpCode >> 4) & 0x07)

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Bra:
		mc.branch(true, address)

	case instructions.Bbr:
		mc.branch(value&(0x01<<((defn.OpCode>>4)&0x07)) == 0x00, address)

	case instructions.Bbs:
		mc.branch(value&(0x01<<((defn.OpCode>>4)&0x07)) != 0x00, address)

	case instructions.Jsr:
		// +1 cycle
		mc.read8BitPC(loNibble)

		// the current value of the PC is now correct, even though we've only read
		// one byte of the address so far. remember, RTS increments the PC when
		// read from the stack, meaning that the PC will be correct at that point

		// phantom read of the stack
		// +1 cycle
		mc.read8Bit(stackPage | mc.SP.Address())

		// push MSB and LSB of PC onto stack
		// +2 cycles
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address()))

		// perform jump
		// +1 cycle
		mc.read8BitPC(hiNibble)

		// address has been built in the read8BitPC callback functions.
		//
		// we would normally do this in the addressing mode switch above. however,
		// JSR uses absolute addressing and we deliberately do nothing in that
		// switch for 'sub-routine' commands
		address = mc.LastResult.InstructionData
		mc.PC.Load(address)

	case instructions.Rts:
		// +1 cycle
		mc.read8Bit(stackPage | mc.SP.Address())

		// +2 cycles
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

		// the return address on the stack is one less than the address of the
		// next instruction
		// +1 cycle
		mc.read8Bit(mc.PC.Address())
		mc.PC.Add(1)

	case instructions.Brk:
		// push PC onto register (same effect as JSR)
		// +2 cycles
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address()))

		// push status register (same effect as PHP)
		// +1 cycle
		mc.push(mc.Status.Value() | registers.BreakBit)

		mc.Status.InterruptDisable = true
		if mc.variant == CMOS65C02 {
			mc.Status.DecimalMode = false
		}

		// perform jump
		// +2 cycles
		mc.PC.Load(mc.read16Bit(cpubus.IRQ))

	case instructions.Rti:
		// +1 cycle
		mc.read8Bit(stackPage | mc.SP.Address())

		// pull status register (same effect as PLP)
		// +1 cycles
		mc.Status.Load(mc.pull())

		// pull program counter. unlike RTS there is no need to add one to
		// return address
		// +2 cycles
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	// undocumented NMOS instructions

	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Dcp:
		// decrease value and compare with the A register
		r := mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		value = r.Value()
		mc.compare(mc.A.Value(), value)

	case instructions.Isc:
		// increase value and subtract from the A register
		r := mc.acc8
		r.Load(value)
		r.Add(1, false)
		value = r.Value()
		mc.sbc(value)

	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ane:
		// the magic constant differs between individual chips. 0xee is the
		// commonly agreed value
		mc.A.ORA(0xee)
		mc.A.AND(mc.X.Value())
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Lxa:
		mc.A.ORA(0xee)
		mc.A.AND(value)
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Axs:
		mc.X.AND(mc.A.Value())

		// axs subtract behaves like CMP as far as carry and overflow flags are
		// concerned
		mc.Status.Carry, _ = mc.X.Subtract(value, true)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Sax:
		r := mc.acc8
		r.Load(mc.A.Value())
		r.AND(mc.X.Value())

		// +1 cycle
		mc.write8Bit(address, r.Value())

	case instructions.Arr:
		mc.A.AND(value)
		t := mc.A.Value()
		carry := mc.Status.Carry
		mc.A.ROR(carry)
		r := mc.A.Value()

		if mc.Status.DecimalMode {
			mc.Status.Sign = carry
			mc.Status.Zero = r == 0
			mc.Status.Overflow = (t^r)&0x40 == 0x40

			// fix up the low nibble and then the high nibble as though the
			// result was a BCD number
			if (t&0x0f)+(t&0x01) > 0x05 {
				r = (r & 0xf0) | ((r + 0x06) & 0x0f)
			}
			mc.Status.Carry = int(t&0xf0)+int(t&0x10) > 0x50
			if mc.Status.Carry {
				r += 0x60
			}
			mc.A.Load(r)
		} else {
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
			mc.Status.Carry = r&0x40 == 0x40
			mc.Status.Overflow = ((r>>6)^(r>>5))&0x01 == 0x01
		}

	case instructions.Slo:
		r := mc.acc8
		r.Load(value)
		mc.Status.Carry = r.ASL()
		value = r.Value()
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Rla:
		r := mc.acc8
		r.Load(value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		value = r.Value()
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Sre:
		r := mc.acc8
		r.Load(value)
		mc.Status.Carry = r.LSR()
		value = r.Value()
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Rra:
		r := mc.acc8
		r.Load(value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		value = r.Value()
		mc.adc(value)

	case instructions.Anc:
		// immediate AND. puts bit 7 into the carry flag (in microcode terms
		// this is as though ASL had been enacted)
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		mc.Status.Carry = mc.Status.Sign

	case instructions.Sha, instructions.Shx, instructions.Shy, instructions.Tas:
		r := mc.acc8
		switch defn.Operator {
		case instructions.Sha:
			r.Load(mc.A.Value())
			r.AND(mc.X.Value())
		case instructions.Shx:
			r.Load(mc.X.Value())
		case instructions.Shy:
			r.Load(mc.Y.Value())
		case instructions.Tas:
			r.Load(mc.A.Value())
			r.AND(mc.X.Value())
			mc.SP.Load(r.Value())
		}

		// the value is ANDed with the high byte of the base address plus one.
		// if indexing crossed a page boundary then the value also replaces
		// the high byte of the address being written to
		r.AND(uint8(base>>8) + 1)
		if crossed {
			address = (uint16(r.Value()) << 8) | (address & 0x00ff)
		}

		// +1 cycle
		mc.write8Bit(address, r.Value())

	case instructions.Las:
		mc.SP.AND(value)
		mc.A.Load(mc.SP.Value())
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.SP.IsZero()
		mc.Status.Sign = mc.SP.IsNegative()

	case instructions.Jam:
		mc.Killed = true
		logger.Logf(mc, "cpu", "JAM instruction (%#04x)", mc.LastResult.Address)

	default:
		panic(fmt.Sprintf("cpu: unknown operator (%s)", defn.Operator))
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		// +1 cycle
		mc.write8Bit(address, value)
	}

	// finalise result
	mc.LastResult.Final = true

	return mc.LastResult.Cycles
}
