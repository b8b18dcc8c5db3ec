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

package hardware

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware/cpu"
	"github.com/jetsetilly/gopher2e/hardware/disk2"
	"github.com/jetsetilly/gopher2e/hardware/disk2/diskimage"
	"github.com/jetsetilly/gopher2e/hardware/memory"
	"github.com/jetsetilly/gopher2e/hardware/preferences"
	"github.com/jetsetilly/gopher2e/logger"
)

// DiskSlot is the slot the Disk II controller is attached to.
const DiskSlot = 6

// Machine is the main container for the emulated components of the Apple II.
type Machine struct {
	Prefs *preferences.Preferences

	CPU  *cpu.CPU
	Mem  *memory.Memory
	Disk *disk2.Controller

	// number of CPU cycles since the last reset
	cycles uint64

	// the speaker is not part of the machine but is attached to it
	speaker memory.SpeakerListener

	// halt is set by Halt() and checked between instructions
	halt atomic.Bool

	// separately supplied boot ROM. used if the system ROM does not have one
	boot []uint8

	// snapshot history. nil if not enabled
	Rewind *Rewind
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The prefs argument can be nil. The machine must be Reset() with a
// ROM before use.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf("machine: %v", err)
		}
	}

	m := &Machine{
		Prefs: prefs,
	}

	m.Mem = memory.NewMemory(prefs)
	m.Mem.Plumb(m, nil)

	m.CPU = cpu.NewCPU(m.Mem, cpu.NMOS6502)

	m.Disk = disk2.NewController(prefs, nil)
	m.Disk.Plumb(m)
	if err := m.Mem.AttachPeripheral(DiskSlot, m.Disk); err != nil {
		return nil, err
	}

	return m, nil
}

// Cycles implements the memory.Clock and disk2.Clock interfaces.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// AttachSpeaker connects a listener to the speaker soft switch. A nil value
// disconnects the current listener.
func (m *Machine) AttachSpeaker(speaker memory.SpeakerListener) {
	m.speaker = speaker
	m.Mem.Plumb(m, speaker)
}

// SetBootROM supplies a Disk II boot ROM separately from the system ROM. It
// takes effect on the next Reset() and only if the system ROM does not
// include a boot ROM.
func (m *Machine) SetBootROM(data []uint8) error {
	boot, err := memory.BootROM(data)
	if err != nil {
		return err
	}
	m.boot = boot
	return nil
}

// Reset the machine with the ROM data. If the model is memory.Auto then the
// model preference is used and if that is also Auto the model is decided by
// the size of the ROM data.
//
// A RomError is returned if the ROM data can not be used. In that case the
// machine has not been changed.
func (m *Machine) Reset(rom []uint8, model memory.Model) error {
	if model == memory.Auto {
		var err error
		model, err = memory.ParseModel(m.Prefs.Model.Get().(string))
		if err != nil {
			return curated.Errorf(memory.RomError, err)
		}
	}

	r, err := memory.NewROM(rom, model)
	if err != nil {
		return err
	}

	m.cycles = 0
	m.halt.Store(false)

	m.Mem.Reset(r)
	m.Mem.Plumb(m, m.speaker)

	variant := cpu.NMOS6502
	if m.Mem.Model().CMOS() {
		variant = cpu.CMOS65C02
	}
	m.CPU = cpu.NewCPU(m.Mem, variant)

	boot := r.Boot
	if boot == nil {
		boot = m.boot
	}
	m.Disk.SetBootROM(boot)
	if boot == nil {
		logger.Logf(logger.Allow, "machine", "no Disk II boot ROM")
	}
	m.Disk.Reset()
	m.Disk.Plumb(m)

	m.CPU.Reset()

	if m.Rewind != nil {
		m.Rewind.Reset()
	}

	logger.Logf(logger.Allow, "machine", "reset as %s with %s", m.Mem.Model(), variant)

	return nil
}

// Halt the machine. The halt is honoured at the next instruction boundary.
// Safe to call from another goroutine.
func (m *Machine) Halt() {
	m.halt.Store(true)
}

// Resume allows the machine to run again after a Halt().
func (m *Machine) Resume() {
	m.halt.Store(false)
}

// Halted returns true if the machine has been halted.
func (m *Machine) Halted() bool {
	return m.halt.Load()
}

// Peek returns the value at the address without side effects.
func (m *Machine) Peek(address uint16) uint8 {
	return m.Mem.Peek(address)
}

// Poke writes the value to RAM at the address without side effects.
func (m *Machine) Poke(address uint16, data uint8) {
	m.Mem.Poke(address, data)
}

// InsertDisk puts a disk image into one of the drives. Drives are numbered
// from zero.
func (m *Machine) InsertDisk(drive int, img *diskimage.Image) error {
	return m.Disk.InsertDisk(drive, img)
}

// EjectDisk removes the disk image from the drive. Returns nil if the drive
// is empty.
func (m *Machine) EjectDisk(drive int) *diskimage.Image {
	return m.Disk.EjectDisk(drive)
}

// KeyPress sets the keyboard latch. The value is an ASCII code.
func (m *Machine) KeyPress(ascii uint8) {
	m.Mem.KeyPress(ascii)
}

// KeyRelease indicates that there is no key being held down.
func (m *Machine) KeyRelease() {
	m.Mem.KeyRelease()
}

// SetPaddle sets the position of one of the four paddles.
func (m *Machine) SetPaddle(paddle int, value uint8) {
	m.Mem.SetPaddle(paddle, value)
}

// SetButton sets the state of one of the three push buttons.
func (m *Machine) SetButton(button int, pressed bool) {
	m.Mem.SetButton(button, pressed)
}
