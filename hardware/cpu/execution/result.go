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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher2e/hardware/cpu/instructions"
)

// Interrupt records whether the CPU serviced an interrupt rather than
// executing an instruction.
type Interrupt int

// List of interrupt types.
const (
	NoInterrupt Interrupt = iota
	IRQ
	NMI
)

func (i Interrupt) String() string {
	switch i {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return ""
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Result type is updated every cycle during the execution of the emulated
// CPU. As the execution continues, more information is acquired and detail
// added to the Result.
//
// The Final field indicates whether the last cycle of the instruction has been
// executed. An instance of Result with a Final value of false can still be
// used but with the caveat that the information is incomplete. Note that a
// Defn of nil means the instruction hasn't been decoded yet.
type Result struct {
	// a reference to the instruction definition. nil if an interrupt was
	// serviced
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully decoded
	ByteCount int

	// the address at which the instruction began
	Address uint16

	// instruction data is the actual instruction data. so, for example, in the
	// case of ROL <$50 the InstructionData value is $50
	InstructionData uint16

	// the actual number of cycles taken by the instruction - usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether a branch instruction branched
	BranchSuccess bool

	// the 65C02 takes an extra cycle for ADC and SBC in decimal mode
	DecimalModeCycle bool

	// the interrupt serviced instead of an instruction
	Interrupt Interrupt

	// whether this data has been finalised - some fields in this struct will
	// be undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the instruction's operand formatted in the usual assembler
// style. Relative operands are shown as the raw offset. Returns the empty
// string for implied instructions or if there is no definition.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	var operand string
	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Immediate:
		operand = fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		operand = fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Absolute:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		operand = fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("$%02x,Y", r.InstructionData)
	case instructions.ZeroPageIndirect:
		operand = fmt.Sprintf("($%02x)", r.InstructionData)
	case instructions.AbsoluteIndexedIndirect:
		operand = fmt.Sprintf("($%04x,X)", r.InstructionData)
	case instructions.ZeroPageRelative:
		operand = fmt.Sprintf("$%02x,$%02x", r.InstructionData&0xff, r.InstructionData>>8)
	}

	return operand
}

func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%04x %s (%d cycles)", r.Address, r.Interrupt, r.Cycles)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	operand := r.Operand()

	s := fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic())
	if operand != "" {
		s = fmt.Sprintf("%s %s", s, operand)
	}
	if r.Final {
		s = fmt.Sprintf("%s (%d cycles)", s, r.Cycles)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s *%s*", s, r.CPUBug)
	}
	return s
}
