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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopher2e/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2e/test"
)

const validMemMap = `0000 -> 01ff	Zero Page & Stack
0200 -> bfff	RAM
c000 -> c08f	Soft Switches
c090 -> c0ff	Slot I/O
c100 -> c7ff	Slot ROM
c800 -> cfff	Expansion ROM
d000 -> ffff	Language Card
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestSlot(t *testing.T) {
	test.ExpectEquality(t, memorymap.Slot(0xc080), 0)
	test.ExpectEquality(t, memorymap.Slot(0xc0e0), 6)
	test.ExpectEquality(t, memorymap.Slot(0xc0ef), 6)
	test.ExpectEquality(t, memorymap.Slot(0xc0f0), 7)
	test.ExpectEquality(t, memorymap.Slot(0xc600), 6)
	test.ExpectEquality(t, memorymap.Slot(0xc6ff), 6)
	test.ExpectEquality(t, memorymap.Slot(0xc300), 3)
}
