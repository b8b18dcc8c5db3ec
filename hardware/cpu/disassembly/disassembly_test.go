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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopher2e/hardware/cpu/disassembly"
	"github.com/jetsetilly/gopher2e/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2e/test"
)

type mem [0x10000]uint8

func (m *mem) Peek(address uint16) uint8 {
	return m[address]
}

func TestLinear(t *testing.T) {
	m := &mem{}
	copy(m[0x0800:], []uint8{
		0xa9, 0x20, // LDA #$20
		0x8d, 0x00, 0x04, // STA $0400
		0xd0, 0xf9, // BNE $0800
		0xea, // NOP
	})

	entries := disassembly.Linear(m, instructions.NMOS(), 0x0800, 4)
	test.DemandEquality(t, len(entries), 4)
	test.ExpectEquality(t, entries[0].String(), "0800  a9 20     LDA #$20")
	test.ExpectEquality(t, entries[1].String(), "0802  8d 00 04  STA $0400")
	test.ExpectEquality(t, entries[2].String(), "0805  d0 f9     BNE $0800")
	test.ExpectEquality(t, entries[3].String(), "0807  ea        NOP")

	target, ok := entries[2].Target()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target, uint16(0x0800))

	_, ok = entries[1].Target()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, entries[3].Next(), uint16(0x0808))
}

func TestCMOS(t *testing.T) {
	m := &mem{}

	// BBR0 $12,$0000 wraps around the bottom of memory
	copy(m[0x0000:], []uint8{0x0f, 0x12, 0xfd})

	e := disassembly.Decode(m, instructions.CMOS(), 0x0000)
	test.ExpectEquality(t, e.Result.Defn.Mnemonic(), "BBR0")
	test.ExpectEquality(t, e.Operand(), "$12,$0000")

	// the same opcode is an undocumented absolute instruction on the NMOS part
	e = disassembly.Decode(m, instructions.NMOS(), 0x0000)
	test.ExpectEquality(t, e.Operand(), "$fd12")
}
