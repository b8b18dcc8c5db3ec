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

package registers

// AddDecimal adds val to the register using binary coded decimal arithmetic,
// as the NMOS 6502 does it. Returns the new carry state along with the zero,
// overflow and sign flags.
//
// The flags are those of the NMOS part. Zero reflects the binary sum of the
// operands. Sign and overflow are taken from the intermediate result, before
// the high nibble is adjusted. None of these three flags is meaningful as a
// decimal result but programs do depend on them.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	zero = uint8(a+b+c) == 0

	al := (a & 0x0f) + (b & 0x0f) + c
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}

	// signed intermediate result for the N and V flags
	s := int(int8(uint8(a&0xf0))) + int(int8(uint8(b&0xf0))) + al
	overflow = s < -128 || s > 127

	// unsigned result for the accumulator and carry
	u := (a & 0xf0) + (b & 0xf0) + al
	sign = u&0x80 == 0x80
	if u >= 0xa0 {
		u += 0x60
	}

	r.value = uint8(u)
	rcarry = u >= 0x100

	return rcarry, zero, overflow, sign
}

// AddDecimalCMOS is the same as AddDecimal except that the zero and sign flags
// should be taken from the register after the operation. The overflow flag is
// calculated in the same way as the NMOS part.
func (r *Register) AddDecimalCMOS(val uint8, carry bool) (rcarry, overflow bool) {
	rcarry, _, overflow, _ = r.AddDecimal(val, carry)
	return rcarry, overflow
}

// SubtractDecimal subtracts val from the register using binary coded decimal
// arithmetic, as the NMOS 6502 does it. Returns the new carry state along with
// the zero, overflow and sign flags.
//
// All flags on the NMOS part are the same as those of a binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	bin := NewRegister(r.value, r.label)
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	al := (a & 0x0f) - (b & 0x0f) + c - 1
	if al < 0 {
		al = ((al - 0x06) & 0x0f) - 0x10
	}
	u := (a & 0xf0) - (b & 0xf0) + al
	if u < 0 {
		u -= 0x60
	}

	r.value = uint8(u)

	return rcarry, zero, overflow, sign
}

// SubtractDecimalCMOS subtracts val from the register using binary coded
// decimal arithmetic, as the CMOS 65C02 does it. The carry and overflow flags
// are the same as those of a binary subtraction. The zero and sign flags should
// be taken from the register after the operation.
func (r *Register) SubtractDecimalCMOS(val uint8, carry bool) (rcarry, overflow bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	bin := NewRegister(r.value, r.label)
	rcarry, overflow = bin.Subtract(val, carry)

	al := (a & 0x0f) - (b & 0x0f) + c - 1
	u := a - b + c - 1
	if u < 0 {
		u -= 0x60
	}
	if al < 0 {
		u -= 0x06
	}

	r.value = uint8(u)

	return rcarry, overflow
}
