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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher2e/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2e/test"
)

func TestTableIntegrity(t *testing.T) {
	for _, tab := range []*instructions.Table{instructions.NMOS(), instructions.CMOS()} {
		for i, defn := range tab {
			test.ExpectEquality(t, int(defn.OpCode), i)
			test.ExpectInequality(t, defn.Operator.String(), "???", defn.OpCode)

			if defn.IsBranch() {
				test.ExpectEquality(t, defn.PageSensitive, true, defn.Mnemonic())
			}
		}
	}
}

func TestCMOSHasNoJam(t *testing.T) {
	for _, defn := range instructions.CMOS() {
		test.ExpectInequality(t, defn.Operator, instructions.Jam, defn.OpCode)
	}

	jams := 0
	for _, defn := range instructions.NMOS() {
		if defn.Operator == instructions.Jam {
			jams++
		}
	}
	test.ExpectEquality(t, jams, 12)
}

func TestMnemonic(t *testing.T) {
	test.ExpectEquality(t, instructions.CMOS()[0x87].Mnemonic(), "SMB0")
	test.ExpectEquality(t, instructions.CMOS()[0x7f].Mnemonic(), "BBR7")
	test.ExpectEquality(t, instructions.CMOS()[0xda].Mnemonic(), "PHX")
	test.ExpectEquality(t, instructions.NMOS()[0xda].Mnemonic(), "NOP")
	test.ExpectEquality(t, instructions.NMOS()[0xa7].Mnemonic(), "LAX")
}

func TestVariantDifferences(t *testing.T) {
	nmos := instructions.NMOS()
	cmos := instructions.CMOS()

	// JMP indirect takes an extra cycle on the 65C02
	test.ExpectEquality(t, nmos[0x6c].Cycles, 5)
	test.ExpectEquality(t, cmos[0x6c].Cycles, 6)

	// shifts with abs,X indexing are page sensitive on the 65C02
	test.ExpectEquality(t, nmos[0x1e].Cycles, 7)
	test.ExpectEquality(t, nmos[0x1e].PageSensitive, false)
	test.ExpectEquality(t, cmos[0x1e].Cycles, 6)
	test.ExpectEquality(t, cmos[0x1e].PageSensitive, true)

	// but INC and DEC are not
	test.ExpectEquality(t, cmos[0xfe].Cycles, 7)
	test.ExpectEquality(t, cmos[0xfe].PageSensitive, false)

	// single cycle NOPs
	test.ExpectEquality(t, cmos[0x03].Cycles, 1)
	test.ExpectEquality(t, cmos[0x03].Bytes, 1)
	test.ExpectEquality(t, cmos[0x5c].Cycles, 8)
	test.ExpectEquality(t, cmos[0x5c].Bytes, 3)

	test.ExpectEquality(t, cmos[0x0f].AddressingMode, instructions.ZeroPageRelative)
	test.ExpectEquality(t, cmos[0x0f].Bytes, 3)
}
