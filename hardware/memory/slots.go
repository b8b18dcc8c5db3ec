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

package memory

import (
	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2e/logger"
)

// SlotError is returned when a peripheral cannot be attached.
const SlotError = "slot error: %v"

// Peripheral is a card in one of the slots 1 to 7. The card sees the sixteen
// I/O addresses from $C080+slot*16 as registers 0 to 15.
type Peripheral interface {
	IORead(reg uint8) uint8
	IOWrite(reg uint8, data uint8)

	// the 256 byte ROM that appears at $Cn00. can be nil
	ROM() []uint8
}

// ExpansionROM is implemented by peripherals that have a ROM for the $C800
// area. Optional.
type ExpansionROM interface {
	ExpansionROM() []uint8
}

// AttachPeripheral puts the peripheral into the slot. A nil peripheral
// empties the slot.
func (mem *Memory) AttachPeripheral(slot int, p Peripheral) error {
	if slot < 1 || slot >= len(mem.slots) {
		return curated.Errorf(SlotError, "no slot %d", slot)
	}
	mem.slots[slot] = p
	if p == nil {
		logger.Logf(logger.Allow, "memory", "slot %d emptied", slot)
	}
	return nil
}

// Peripheral returns the peripheral attached to the slot. Returns nil if the
// slot is empty or does not exist.
func (mem *Memory) Peripheral(slot int) Peripheral {
	if slot < 1 || slot >= len(mem.slots) {
		return nil
	}
	return mem.slots[slot]
}

func (mem *Memory) readSlotIO(address uint16) uint8 {
	p := mem.slots[memorymap.Slot(address)]
	if p == nil {
		return fill
	}
	return p.IORead(uint8(address & 0x0f))
}

func (mem *Memory) writeSlotIO(address uint16, data uint8) {
	p := mem.slots[memorymap.Slot(address)]
	if p == nil {
		return
	}
	p.IOWrite(uint8(address&0x0f), data)
}

func (mem *Memory) internalROM(address uint16) uint8 {
	if mem.rom == nil {
		return fill
	}
	return mem.rom.read(address)
}

// readSlotROM returns the value for an address in the $C100 to $C7FF area.
// accessing the area of a slot gives that slot the expansion ROM area. if
// peek is true the read has no side effects.
func (mem *Memory) readSlotROM(address uint16, peek bool) uint8 {
	sw := &mem.Switches
	slot := memorymap.Slot(address)

	if mem.model.IsIIe() {
		if sw.IntCXROM {
			return mem.internalROM(address)
		}
		if slot == 3 && !sw.SlotC3ROM {
			if !peek {
				sw.IntC8ROM = true
			}
			return mem.internalROM(address)
		}
	}

	if !peek {
		mem.expansionSlot = slot
	}

	p := mem.slots[slot]
	if p == nil {
		return fill
	}
	rom := p.ROM()
	if int(address&0xff) >= len(rom) {
		return fill
	}
	return rom[address&0xff]
}

// readExpansionROM returns the value for an address in the $C800 to $CFFF
// area. an access to $CFFF releases the area. if peek is true the read has no
// side effects.
func (mem *Memory) readExpansionROM(address uint16, peek bool) uint8 {
	sw := &mem.Switches

	v := fill
	if mem.model.IsIIe() && (sw.IntCXROM || sw.IntC8ROM) {
		v = mem.internalROM(address)
	} else if p, ok := mem.slots[mem.expansionSlot].(ExpansionROM); ok {
		rom := p.ExpansionROM()
		idx := int(address - memorymap.OriginExpansionROM)
		if idx < len(rom) {
			v = rom[idx]
		}
	}

	if !peek && address == memorymap.ReleaseExpansionROM {
		mem.expansionSlot = 0
		sw.IntC8ROM = false
	}

	return v
}
