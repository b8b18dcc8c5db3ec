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

// the language card switches are the sixteen addresses from $C080. bit 3 of
// the address selects the $D000 bank and bits 0 and 1 select read and write
// behaviour. write enable requires two consecutive reads of an odd address.
// a write to an odd address does not disable an already enabled write but it
// does restart the prewrite sequence.
func (mem *Memory) languageCard(address uint16, write bool) {
	reg := address & 0x0f
	sw := &mem.Switches

	sw.LCBank2 = reg&0x08 == 0x00
	sw.LCReadRAM = reg&0x03 == 0x00 || reg&0x03 == 0x03

	if reg&0x01 == 0x01 {
		if write {
			sw.LCPrewrite = false
		} else {
			if sw.LCPrewrite {
				sw.LCWriteRAM = true
			}
			sw.LCPrewrite = true
		}
	} else {
		sw.LCWriteRAM = false
		sw.LCPrewrite = false
	}
}

// the language card RAM for the address. nil if the switches select ROM.
// bank 1 of the $D000 area is stored at $C000 in the underlying RAM
func (mem *Memory) languageCardRAM(address uint16, write bool) *uint8 {
	sw := &mem.Switches

	if write {
		if !sw.LCWriteRAM {
			return nil
		}
	} else if !sw.LCReadRAM {
		return nil
	}

	bank := &mem.Main
	if mem.model.IsIIe() && sw.AltZP {
		bank = &mem.Aux
	}

	if address < 0xe000 && !sw.LCBank2 {
		return &bank[address-0x1000]
	}
	return &bank[address]
}
