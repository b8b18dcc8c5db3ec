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

func TestDecimalModeCarry(t *testing.T) {
	var rcarry bool

	r8 := registers.NewRegister(0, "test")

	// addition without carry
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x01)
	test.ExpectEquality(t, rcarry, false)

	// addition with carry
	rcarry, _, _, _ = r8.AddDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x03)
	test.ExpectEquality(t, rcarry, false)

	// subtraction with carry (subtract value)
	r8.Load(9)
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x08)

	// subtraction without carry (subtract value and another 1)
	r8.SubtractDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x06)

	// addition on tens boundary
	r8.Load(9)
	r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x10)

	// subtraction on tens boundary
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x09)

	// addition on hundreds boundary
	r8.Load(0x99)
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, rcarry, true)

	// subtraction on hundreds boundary
	rcarry, _, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectEquality(t, rcarry, false)
}

func TestDecimalModeNMOSFlags(t *testing.T) {
	var zero, overflow, sign bool

	r8 := registers.NewRegister(0x99, "test")

	// the result is zero but the NMOS zero flag reflects the binary sum (0x9a)
	_, zero, _, sign = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, sign, true)

	// binary sum of 0x50 and 0x50 is 0xa0 (not zero) but intermediate result
	// overflows a signed byte
	r8.Load(0x50)
	_, zero, overflow, sign = r8.AddDecimal(0x50, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, sign, true)

	// subtract to zero. flags are the same as for binary subtraction
	r8.Load(0x10)
	_, zero, _, sign = r8.SubtractDecimal(0x10, true)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, zero, true)
	test.ExpectEquality(t, sign, false)
}

func TestDecimalModeCMOS(t *testing.T) {
	var rcarry bool

	r8 := registers.NewRegister(0x99, "test")
	rcarry, _ = r8.AddDecimalCMOS(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, rcarry, true)
	test.ExpectEquality(t, r8.IsZero(), true)

	r8.Load(0x00)
	rcarry, _ = r8.SubtractDecimalCMOS(1, true)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectEquality(t, rcarry, false)
	test.ExpectEquality(t, r8.IsNegative(), true)

	r8.Load(0x42)
	r8.SubtractDecimalCMOS(0x13, true)
	test.ExpectEquality(t, r8.Value(), 0x29)
}

// for valid BCD operands both variants produce the same accumulator result
func TestDecimalModeVariantsAgree(t *testing.T) {
	for a := 0; a < 100; a++ {
		for b := 0; b < 100; b += 7 {
			av := uint8((a/10)<<4 | a%10)
			bv := uint8((b/10)<<4 | b%10)

			n := registers.NewRegister(av, "nmos")
			c := registers.NewRegister(av, "cmos")
			nc, _, _, _ := n.AddDecimal(bv, true)
			cc, _ := c.AddDecimalCMOS(bv, true)
			test.ExpectEquality(t, n.Value(), c.Value(), av, bv)
			test.ExpectEquality(t, nc, cc, av, bv)

			n.Load(av)
			c.Load(av)
			nc, _, _, _ = n.SubtractDecimal(bv, true)
			cc, _ = c.SubtractDecimalCMOS(bv, true)
			test.ExpectEquality(t, n.Value(), c.Value(), av, bv)
			test.ExpectEquality(t, nc, cc, av, bv)
		}
	}
}
