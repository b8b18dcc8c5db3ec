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
	"fmt"
	"strings"
)

// SoftSwitches is the state of every latch that affects the memory map or the
// video mode. Switches are changed by accessing an address. The data value
// of a write is never used.
type SoftSwitches struct {
	// IIe memory switches
	Store80   bool
	RamRd     bool
	RamWrt    bool
	IntCXROM  bool
	AltZP     bool
	SlotC3ROM bool
	IntC8ROM  bool

	// video switches. Col80 and AltChar are IIe only
	Col80   bool
	AltChar bool
	Text    bool
	Mixed   bool
	Page2   bool
	Hires   bool
	DHires  bool

	Annunciator [4]bool

	// when IOUDis is true the $C05E/$C05F switches control annunciator 3.
	// otherwise they control DHires
	IOUDis bool

	// language card. LCPrewrite is the first of the two reads required to
	// write enable the RAM
	LCBank2    bool
	LCReadRAM  bool
	LCWriteRAM bool
	LCPrewrite bool
}

// reset switches to the power-on state. the language card reads ROM and
// writes to bank 2
func (sw *SoftSwitches) reset() {
	*sw = SoftSwitches{
		Text:       true,
		IOUDis:     true,
		LCBank2:    true,
		LCWriteRAM: true,
	}
}

func (sw SoftSwitches) String() string {
	s := strings.Builder{}

	flag := func(label string, v bool) {
		if v {
			s.WriteString(strings.ToUpper(label))
		} else {
			s.WriteString(strings.ToLower(label))
		}
		s.WriteRune(' ')
	}

	flag("80store", sw.Store80)
	flag("ramrd", sw.RamRd)
	flag("ramwrt", sw.RamWrt)
	flag("intcxrom", sw.IntCXROM)
	flag("altzp", sw.AltZP)
	flag("slotc3rom", sw.SlotC3ROM)
	flag("intc8rom", sw.IntC8ROM)
	s.WriteString("\n")

	flag("80col", sw.Col80)
	flag("altchar", sw.AltChar)
	flag("text", sw.Text)
	flag("mixed", sw.Mixed)
	flag("page2", sw.Page2)
	flag("hires", sw.Hires)
	flag("dhires", sw.DHires)
	flag("ioudis", sw.IOUDis)
	s.WriteString("\n")

	for i, a := range sw.Annunciator {
		flag(fmt.Sprintf("an%d", i), a)
	}
	s.WriteString("\n")

	flag("lcbank2", sw.LCBank2)
	flag("lcread", sw.LCReadRAM)
	flag("lcwrite", sw.LCWriteRAM)
	flag("lcprewrite", sw.LCPrewrite)

	return strings.TrimSpace(s.String())
}
