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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher2e/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2e/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.String(), "test=00")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, r8.IsNegative(), true)

	// addition with carry in and carry out
	r8.Load(255)
	carry, overflow = r8.Add(0, true)
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// subtraction
	r8.Load(10)
	carry, _ = r8.Subtract(11, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectEquality(t, carry, false)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 254)
	test.ExpectEquality(t, carry, true)

	// subtraction overflow. -128 - 1
	r8.Load(0x80)
	_, overflow = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectEquality(t, overflow, true)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectEquality(t, r8.IsBitV(), true)

	// shifts
	r8.Load(0xff)
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectEquality(t, carry, false)

	// rotations
	r8.Load(0x80)
	carry = r8.ROL(true)
	test.ExpectEquality(t, r8.Value(), 0x01)
	test.ExpectEquality(t, carry, true)
	carry = r8.ROR(false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, carry, true)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectEquality(t, carry, false)
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister

	sr.Reset()
	test.ExpectEquality(t, sr.String(), "sv-bdizc")
	test.ExpectEquality(t, sr.Value(), registers.UnusedBit)

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
	test.ExpectEquality(t, sr.Value(), 0xff)

	sr.Load(registers.CarryBit | registers.DecimalBit)
	test.ExpectEquality(t, sr.String(), "sv-bDizC")
	test.ExpectEquality(t, sr.Value(), 0x29)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0x0000)
	test.ExpectEquality(t, pc.String(), "0000")
}
