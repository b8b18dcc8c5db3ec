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
	"github.com/jetsetilly/gopher2e/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2e/hardware/preferences"
	"github.com/jetsetilly/gopher2e/logger"
)

// the value returned by reads of addresses that have no data. reads of pure
// switch addresses also return this value.
const fill = uint8(0xff)

// Fill is the value returned by reads of unmapped addresses.
const Fill = fill

// Clock is the source of the current cycle count. Used for timing the paddles
// and the vertical blank status.
type Clock interface {
	Cycles() uint64
}

// SpeakerListener is notified of every access to the speaker soft switch.
type SpeakerListener interface {
	SpeakerToggle(cycle uint64)
}

// Memory is the Apple II memory map. It implements the cpubus.Memory and
// cpubus.Debugger interfaces.
type Memory struct {
	// main and auxiliary RAM. the $C000 page of each is used for bank 1 of the
	// language card $D000 area. Aux is only visible on IIe models
	Main [0x10000]uint8
	Aux  [0x10000]uint8

	Switches SoftSwitches

	model Model
	rom   *ROM

	// keyboard latch. bit 7 is the strobe
	keyLatch uint8
	keyDown  bool

	buttons       [3]bool
	paddles       [4]uint8
	paddleTrigger uint64

	// the slot that currently owns the $C800 expansion ROM area
	expansionSlot int

	slots   [8]Peripheral
	clock   Clock
	speaker SpeakerListener

	prefs *preferences.Preferences
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The prefs argument can be nil.
func NewMemory(prefs *preferences.Preferences) *Memory {
	mem := &Memory{
		model: AppleIIPlus,
		prefs: prefs,
	}
	mem.Switches.reset()
	mem.paddles = [4]uint8{0x80, 0x80, 0x80, 0x80}
	return mem
}

// Reset the memory map to the power-on state using the ROM and the model
// given by the ROM. A nil ROM leaves the model unchanged and all ROM areas
// will read as the fill value. Peripherals stay attached.
func (mem *Memory) Reset(rom *ROM) {
	mem.rom = rom
	if rom != nil && rom.Model != Auto {
		mem.model = rom.Model
	}

	mem.Switches.reset()
	mem.keyLatch = 0
	mem.keyDown = false
	mem.buttons = [3]bool{}
	mem.paddleTrigger = 0
	mem.expansionSlot = 0

	if mem.prefs != nil && mem.prefs.RandomState.Get().(bool) {
		for i := range mem.Main {
			mem.Main[i] = uint8(mem.prefs.RandSrc.Intn(256))
		}
		for i := range mem.Aux {
			mem.Aux[i] = uint8(mem.prefs.RandSrc.Intn(256))
		}
	} else {
		clear(mem.Main[:])
		clear(mem.Aux[:])
	}

	logger.Logf(logger.Allow, "memory", "reset as %s", mem.model)
}

// Model returns the model being emulated.
func (mem *Memory) Model() Model {
	return mem.model
}

// Plumb a new clock and speaker listener into the memory map. Either can be
// nil.
func (mem *Memory) Plumb(clock Clock, speaker SpeakerListener) {
	mem.clock = clock
	mem.speaker = speaker
}

// Snapshot creates a copy of the memory map. Peripherals are shared with the
// copy.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

func (mem *Memory) cycles() uint64 {
	if mem.clock == nil {
		return 0
	}
	return mem.clock.Cycles()
}

// ram returns the RAM location for the address given the current switches.
// returns nil if the address is not currently mapped to RAM.
func (mem *Memory) ram(address uint16, write bool) *uint8 {
	sw := &mem.Switches
	iie := mem.model.IsIIe()

	switch memorymap.MapAddress(address) {
	case memorymap.ZeroPage:
		if iie && sw.AltZP {
			return &mem.Aux[address]
		}
		return &mem.Main[address]

	case memorymap.RAM:
		if !iie {
			return &mem.Main[address]
		}

		aux := sw.RamRd
		if write {
			aux = sw.RamWrt
		}

		// with 80STORE on the display pages follow PAGE2
		if sw.Store80 {
			if address >= memorymap.OriginTextPage1 && address <= memorymap.MemtopTextPage1 {
				aux = sw.Page2
			} else if sw.Hires && address >= memorymap.OriginHiresPage1 && address <= memorymap.MemtopHiresPage1 {
				aux = sw.Page2
			}
		}

		if aux {
			return &mem.Aux[address]
		}
		return &mem.Main[address]

	case memorymap.LanguageCard:
		return mem.languageCardRAM(address, write)
	}

	return nil
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	switch memorymap.MapAddress(address) {
	case memorymap.IO:
		return mem.readIO(address, false)
	case memorymap.SlotIO:
		return mem.readSlotIO(address)
	case memorymap.SlotROM:
		return mem.readSlotROM(address, false)
	case memorymap.ExpansionROM:
		return mem.readExpansionROM(address, false)
	}

	if p := mem.ram(address, false); p != nil {
		return *p
	}

	if mem.rom == nil {
		return fill
	}
	return mem.rom.read(address)
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	switch memorymap.MapAddress(address) {
	case memorymap.IO:
		mem.writeIO(address)
		return
	case memorymap.SlotIO:
		mem.writeSlotIO(address, data)
		return
	case memorymap.SlotROM:
		// writes to the slot ROM area still select the expansion ROM
		mem.readSlotROM(address, false)
		return
	case memorymap.ExpansionROM:
		mem.readExpansionROM(address, false)
		return
	}

	if p := mem.ram(address, true); p != nil {
		*p = data
	}
}

// Peek implements the cpubus.Debugger interface. Peek never changes the state
// of the memory map or of any peripheral.
func (mem *Memory) Peek(address uint16) uint8 {
	switch memorymap.MapAddress(address) {
	case memorymap.IO:
		return mem.readIO(address, true)
	case memorymap.SlotIO:
		return fill
	case memorymap.SlotROM:
		return mem.readSlotROM(address, true)
	case memorymap.ExpansionROM:
		return mem.readExpansionROM(address, true)
	}

	if p := mem.ram(address, false); p != nil {
		return *p
	}

	if mem.rom == nil {
		return fill
	}
	return mem.rom.read(address)
}

// Poke implements the cpubus.Debugger interface. The value is written to the
// RAM that a read of the address would see. Pokes to ROM and to I/O addresses
// are ignored.
func (mem *Memory) Poke(address uint16, data uint8) {
	if p := mem.ram(address, false); p != nil {
		*p = data
	}
}
