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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ZeroPage:
		return "Zero Page & Stack"
	case RAM:
		return "RAM"
	case IO:
		return "Soft Switches"
	case SlotIO:
		return "Slot I/O"
	case SlotROM:
		return "Slot ROM"
	case ExpansionROM:
		return "Expansion ROM"
	case LanguageCard:
		return "Language Card"
	}

	return "undefined"
}

// The different memory areas in the Apple II.
const (
	Undefined Area = iota
	ZeroPage
	RAM
	IO
	SlotIO
	SlotROM
	ExpansionROM
	LanguageCard
)

// The origin and memory top for each area of memory. The language card area
// is ROM or RAM depending on the state of the language card switches.
const (
	OriginZeroPage     = uint16(0x0000)
	MemtopZeroPage     = uint16(0x01ff)
	OriginRAM          = uint16(0x0200)
	MemtopRAM          = uint16(0xbfff)
	OriginIO           = uint16(0xc000)
	MemtopIO           = uint16(0xc08f)
	OriginSlotIO       = uint16(0xc090)
	MemtopSlotIO       = uint16(0xc0ff)
	OriginSlotROM      = uint16(0xc100)
	MemtopSlotROM      = uint16(0xc7ff)
	OriginExpansionROM = uint16(0xc800)
	MemtopExpansionROM = uint16(0xcfff)
	OriginLanguageCard = uint16(0xd000)
	MemtopLanguageCard = uint16(0xffff)
)

// Within the RAM area there are regions that are affected by the 80STORE
// switch. The display pages follow PAGE2 rather than RAMRD/RAMWRT when 80STORE
// is on. The hires page only follows PAGE2 if HIRES is also on.
const (
	OriginTextPage1  = uint16(0x0400)
	MemtopTextPage1  = uint16(0x07ff)
	OriginHiresPage1 = uint16(0x2000)
	MemtopHiresPage1 = uint16(0x3fff)
)

// Access to this address releases the expansion ROM of whichever slot
// claimed it.
const ReleaseExpansionROM = uint16(0xcfff)

// Slot returns the slot number of an address in the SlotIO or SlotROM areas.
// The language card is in slot zero.
func Slot(address uint16) int {
	if address >= OriginSlotROM {
		return int(address>>8) & 0x07
	}
	return int((address-0xc080)>>4) & 0x07
}

// MapAddress returns the area the address belongs to.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopZeroPage:
		return ZeroPage
	case address <= MemtopRAM:
		return RAM
	case address <= MemtopIO:
		return IO
	case address <= MemtopSlotIO:
		return SlotIO
	case address <= MemtopSlotROM:
		return SlotROM
	case address <= MemtopExpansionROM:
		return ExpansionROM
	}
	return LanguageCard
}
