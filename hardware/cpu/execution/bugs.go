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

// Bug identifies a quirk of the NMOS 6502 that was triggered by an
// instruction. The 65C02 in the enhanced Apple IIe fixes all of them.
type Bug uint8

// List of NMOS quirks. PhantomIOAccess matters on the Apple II because a
// read of the soft switch page has side effects: an indexed instruction that
// crosses a page can flip a switch at an address it never meant to touch.
const (
	NoBug Bug = iota
	JmpIndirectAddressingBug
	IndexedIndirectAddressingBug
	ZeroPageIndexBug
	PhantomIOAccess
)

func (b Bug) String() string {
	switch b {
	case JmpIndirectAddressingBug:
		return "indirect addressing bug"
	case IndexedIndirectAddressingBug:
		return "indexed indirect addressing bug"
	case ZeroPageIndexBug:
		return "zero page index bug"
	case PhantomIOAccess:
		return "phantom i/o access"
	}
	return ""
}
