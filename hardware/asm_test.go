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

package hardware_test

import "fmt"

// assembler is just enough of a 6502 assembler for the test programs
type assembler struct {
	origin uint16
	code   []uint8
	labels map[string]uint16
	fixups []fixup
}

type fixup struct {
	offset   int
	label    string
	relative bool
}

func newAssembler(origin uint16) *assembler {
	return &assembler{
		origin: origin,
		labels: make(map[string]uint16),
	}
}

func (a *assembler) pc() uint16 {
	return a.origin + uint16(len(a.code))
}

func (a *assembler) label(name string) {
	a.labels[name] = a.pc()
}

func (a *assembler) op(b ...uint8) {
	a.code = append(a.code, b...)
}

func (a *assembler) abs(opcode uint8, address uint16) {
	a.op(opcode, uint8(address), uint8(address>>8))
}

func (a *assembler) branch(opcode uint8, label string) {
	a.op(opcode, 0x00)
	a.fixups = append(a.fixups, fixup{offset: len(a.code) - 1, label: label, relative: true})
}

func (a *assembler) jmp(label string) {
	a.op(0x4c, 0x00, 0x00)
	a.fixups = append(a.fixups, fixup{offset: len(a.code) - 2, label: label})
}

// assemble resolves the labels and returns the program
func (a *assembler) assemble() []uint8 {
	for _, f := range a.fixups {
		address, ok := a.labels[f.label]
		if !ok {
			panic(fmt.Sprintf("unknown label: %s", f.label))
		}
		if f.relative {
			// offset is from the address of the next instruction
			d := int(address) - int(a.origin) - (f.offset + 1)
			if d < -128 || d > 127 {
				panic(fmt.Sprintf("branch out of range: %s", f.label))
			}
			a.code[f.offset] = uint8(int8(d))
		} else {
			a.code[f.offset] = uint8(address)
			a.code[f.offset+1] = uint8(address >> 8)
		}
	}
	return a.code
}
