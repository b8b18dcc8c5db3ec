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
	"github.com/jetsetilly/gopher2e/hardware/memory/addresses"
)

// timing of the video scan. used for the vertical blank status
const (
	cyclesPerLine = 65
	linesPerFrame = 262
	visibleLines  = 192
)

// number of cycles per unit of paddle value
const paddleCyclesPerUnit = 11

func bit7(v bool) uint8 {
	if v {
		return 0x80
	}
	return 0x00
}

// KeyPress sets the keyboard latch. The strobe (bit 7) is set.
func (mem *Memory) KeyPress(ascii uint8) {
	mem.keyLatch = ascii | 0x80
	mem.keyDown = true
}

// KeyRelease clears the any-key-down flag. The latch is unaffected.
func (mem *Memory) KeyRelease() {
	mem.keyDown = false
}

// SetButton sets the state of one of the three push buttons. Out of range
// button numbers are ignored.
func (mem *Memory) SetButton(button int, pressed bool) {
	if button >= 0 && button < len(mem.buttons) {
		mem.buttons[button] = pressed
	}
}

// SetPaddle sets the value of one of the four paddles. Out of range paddle
// numbers are ignored.
func (mem *Memory) SetPaddle(paddle int, value uint8) {
	if paddle >= 0 && paddle < len(mem.paddles) {
		mem.paddles[paddle] = value
	}
}

func (mem *Memory) keyboardStrobe() uint8 {
	return bit7(mem.keyDown) | mem.keyLatch&0x7f
}

func (mem *Memory) toggleSpeaker() {
	if mem.speaker != nil {
		mem.speaker.SpeakerToggle(mem.cycles())
	}
}

// vertical blank status. bit 7 is set while the beam is drawing the visible
// lines
func (mem *Memory) vbl() bool {
	line := (mem.cycles() / cyclesPerLine) % linesPerFrame
	return line < visibleLines
}

// the value of the IIe status registers from $C011 to $C01F
func (mem *Memory) status(address uint16) bool {
	sw := &mem.Switches
	switch address {
	case addresses.RDLCBNK2:
		return sw.LCBank2
	case addresses.RDLCRAM:
		return sw.LCReadRAM
	case addresses.RDRAMRD:
		return sw.RamRd
	case addresses.RDRAMWRT:
		return sw.RamWrt
	case addresses.RDCXROM:
		return sw.IntCXROM
	case addresses.RDALTZP:
		return sw.AltZP
	case addresses.RDC3ROM:
		return sw.SlotC3ROM
	case addresses.RD80STORE:
		return sw.Store80
	case addresses.RDVBLBAR:
		return mem.vbl()
	case addresses.RDTEXT:
		return sw.Text
	case addresses.RDMIXED:
		return sw.Mixed
	case addresses.RDPAGE2:
		return sw.Page2
	case addresses.RDHIRES:
		return sw.Hires
	case addresses.RDALTCHAR:
		return sw.AltChar
	case addresses.RD80VID:
		return sw.Col80
	}
	return false
}

// the video and annunciator switches from $C050 to $C05F respond to reads and
// writes alike
func (mem *Memory) videoSwitch(address uint16) {
	sw := &mem.Switches
	on := address&0x01 == 0x01

	switch address &^ 0x01 {
	case addresses.TXTCLR:
		sw.Text = on
	case addresses.MIXCLR:
		sw.Mixed = on
	case addresses.LOWSCR:
		sw.Page2 = on
	case addresses.LORES:
		sw.Hires = on
	case addresses.CLRAN0:
		sw.Annunciator[0] = on
	case addresses.CLRAN1:
		sw.Annunciator[1] = on
	case addresses.CLRAN2:
		sw.Annunciator[2] = on
	case addresses.CLRAN3:
		if mem.model.IsIIe() && !sw.IOUDis {
			// the OFF address of annunciator 3 turns double hires on
			sw.DHires = !on
		} else {
			sw.Annunciator[3] = on
		}
	}
}

// the IIe memory switches from $C000 to $C00F are write only
func (mem *Memory) iieSwitch(address uint16) {
	sw := &mem.Switches
	on := address&0x01 == 0x01

	switch address &^ 0x01 {
	case addresses.CLR80STORE:
		sw.Store80 = on
	case addresses.RDMAINRAM:
		sw.RamRd = on
	case addresses.WRMAINRAM:
		sw.RamWrt = on
	case addresses.SETSLOTCX:
		sw.IntCXROM = on
	case addresses.SETSTDZP:
		sw.AltZP = on
	case addresses.SETINTC3ROM:
		sw.SlotC3ROM = on
	case addresses.CLR80VID:
		sw.Col80 = on
	case addresses.CLRALTCHAR:
		sw.AltChar = on
	}
}

func (mem *Memory) triggerPaddles() {
	mem.paddleTrigger = mem.cycles()
}

func (mem *Memory) paddle(n int) bool {
	elapsed := mem.cycles() - mem.paddleTrigger
	return elapsed < uint64(mem.paddles[n])*paddleCyclesPerUnit
}

// readIO handles reads from $C000 to $C08F. if peek is true the read has no
// side effects.
func (mem *Memory) readIO(address uint16, peek bool) uint8 {
	iie := mem.model.IsIIe()

	switch {
	case address < addresses.KBDSTRB:
		return mem.keyLatch

	case address == addresses.KBDSTRB:
		v := mem.keyboardStrobe()
		if !peek {
			mem.keyLatch &= 0x7f
		}
		return v

	case address <= addresses.RD80VID:
		if iie {
			return bit7(mem.status(address)) | mem.keyLatch&0x7f
		}
		// the II and II+ treat the whole range as the strobe
		v := mem.keyboardStrobe()
		if !peek {
			mem.keyLatch &= 0x7f
		}
		return v

	case address < addresses.SPKR:
		// cassette output is not emulated
		return fill

	case address < addresses.STROBE:
		if !peek {
			mem.toggleSpeaker()
		}
		return fill

	case address < addresses.TXTCLR:
		return fill

	case address < addresses.TAPEIN:
		if !peek {
			mem.videoSwitch(address)
		}
		return fill

	case address == addresses.TAPEIN:
		return fill

	case address <= addresses.PB2:
		return bit7(mem.buttons[address-addresses.PB0])

	case address <= addresses.PADDL3:
		return bit7(mem.paddle(int(address - addresses.PADDL0)))

	case address < addresses.PTRIG:
		// $C068 to $C06F mirror the buttons and paddles
		return mem.readIO(address-0x0008, peek)

	case address < addresses.IOUDISON:
		if !peek {
			mem.triggerPaddles()
		}
		return fill

	case address <= addresses.IOUDISOFF:
		if iie {
			if address == addresses.IOUDISON {
				return bit7(mem.Switches.IOUDis)
			}
			return bit7(mem.Switches.DHires)
		}
		if !peek {
			mem.triggerPaddles()
		}
		return fill
	}

	// language card
	if !peek {
		mem.languageCard(address, false)
	}
	return fill
}

// writeIO handles writes to $C000 to $C08F. the data is never used.
func (mem *Memory) writeIO(address uint16) {
	iie := mem.model.IsIIe()

	switch {
	case address < addresses.KBDSTRB:
		if iie {
			mem.iieSwitch(address)
		}

	case address <= addresses.RD80VID:
		mem.keyLatch &= 0x7f

	case address < addresses.SPKR:

	case address < addresses.STROBE:
		mem.toggleSpeaker()

	case address < addresses.TXTCLR:

	case address < addresses.TAPEIN:
		mem.videoSwitch(address)

	case address < addresses.PTRIG:

	case address < addresses.IOUDISON:
		mem.triggerPaddles()

	case address == addresses.IOUDISON:
		if iie {
			mem.Switches.IOUDis = true
		}

	case address == addresses.IOUDISOFF:
		if iie {
			mem.Switches.IOUDis = false
		}

	default:
		mem.languageCard(address, true)
	}
}
