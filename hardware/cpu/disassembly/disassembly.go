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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2e/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2e/hardware/cpu/instructions"
)

// Peeker is the memory interface required for disassembly. Peek must not
// have side effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// Entry is a disassembled instruction. The Result field has the Final field
// set to false because the instruction has not been executed.
type Entry struct {
	Result execution.Result

	// the raw bytes of the instruction
	Bytecode []uint8
}

// Decode the instruction at the address. Every opcode decodes to something
// because both instruction tables are complete.
func Decode(mem Peeker, table *instructions.Table, address uint16) Entry {
	opcode := mem.Peek(address)
	defn := &table[opcode]

	e := Entry{
		Result: execution.Result{
			Defn:      defn,
			Address:   address,
			ByteCount: defn.Bytes,
		},
		Bytecode: []uint8{opcode},
	}

	for i := 1; i < defn.Bytes; i++ {
		e.Bytecode = append(e.Bytecode, mem.Peek(address+uint16(i)))
	}

	switch defn.Bytes {
	case 2:
		e.Result.InstructionData = uint16(e.Bytecode[1])
	case 3:
		e.Result.InstructionData = uint16(e.Bytecode[1]) | uint16(e.Bytecode[2])<<8
	}

	return e
}

// Linear disassembly of n instructions from the address. Every instruction
// is assumed to follow on from the previous one.
func Linear(mem Peeker, table *instructions.Table, address uint16, n int) []Entry {
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		e := Decode(mem, table, address)
		entries = append(entries, e)
		address += uint16(len(e.Bytecode))
	}
	return entries
}

// Next returns the address of the instruction that follows in memory.
func (e Entry) Next() uint16 {
	return e.Result.Address + uint16(len(e.Bytecode))
}

// Target returns the destination of a branch. The second return value is
// false if the instruction is not a branch.
func (e Entry) Target() (uint16, bool) {
	switch e.Result.Defn.AddressingMode {
	case instructions.Relative:
		return e.Next() + uint16(int8(e.Result.InstructionData)), true
	case instructions.ZeroPageRelative:
		return e.Next() + uint16(int8(e.Result.InstructionData>>8)), true
	}
	return 0, false
}

// Operand returns the operand with branch offsets resolved to an address.
func (e Entry) Operand() string {
	switch e.Result.Defn.AddressingMode {
	case instructions.Relative:
		t, _ := e.Target()
		return fmt.Sprintf("$%04x", t)
	case instructions.ZeroPageRelative:
		t, _ := e.Target()
		return fmt.Sprintf("$%02x,$%04x", e.Result.InstructionData&0xff, t)
	}
	return e.Result.Operand()
}

func (e Entry) String() string {
	var b strings.Builder
	for _, v := range e.Bytecode {
		fmt.Fprintf(&b, "%02x ", v)
	}

	s := fmt.Sprintf("%04x  %-9s %s", e.Result.Address, b.String(), e.Result.Defn.Mnemonic())
	if op := e.Operand(); op != "" {
		s = fmt.Sprintf("%s %s", s, op)
	}
	return s
}
