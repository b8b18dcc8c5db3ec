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

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// the bits in the status register when represented as a uint8
const (
	CarryBit     = 0x01
	ZeroBit      = 0x02
	InterruptBit = 0x04
	DecimalBit   = 0x08
	BreakBit     = 0x10
	UnusedBit    = 0x20
	OverflowBit  = 0x40
	SignBit      = 0x80
)

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, on rune, off rune) {
		if set {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'S', 's')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= SignBit
	}
	if sr.Overflow {
		v |= OverflowBit
	}
	if sr.Break {
		v |= BreakBit
	}
	if sr.DecimalMode {
		v |= DecimalBit
	}
	if sr.InterruptDisable {
		v |= InterruptBit
	}
	if sr.Zero {
		v |= ZeroBit
	}
	if sr.Carry {
		v |= CarryBit
	}

	// unused bit in the status register is always 1. this doesn't matter when
	// we're in normal form but it does matter in uint8 context
	v |= UnusedBit

	return v
}

// Load sets the status register flags from an 8 bit integer (which has been
// taken from the stack, for example).
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&SignBit == SignBit
	sr.Overflow = v&OverflowBit == OverflowBit
	sr.Break = v&BreakBit == BreakBit
	sr.DecimalMode = v&DecimalBit == DecimalBit
	sr.InterruptDisable = v&InterruptBit == InterruptBit
	sr.Zero = v&ZeroBit == ZeroBit
	sr.Carry = v&CarryBit == CarryBit
}
