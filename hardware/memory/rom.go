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
	"github.com/jetsetilly/gopher2e/logger"
)

// RomError is returned when the ROM data is not usable.
const RomError = "rom error: %v"

// Supported sizes of ROM data.
const (
	romSizeMonitor  = 12288 // $D000-$FFFF
	romSizeSystem   = 16384 // $C000-$FFFF
	romSizeIIPlus   = 20480 // package with boot ROM and monitor ROM
	romSizeIIe      = 32768 // package with boot ROM and system ROM in the upper half
	bootROMSize     = 256
	bootROMOffset   = 0x0600
	monitorOffset   = 0x1000 // offset of $D000 in the system ROM
	iiPlusMonitor   = 0x2000 // offset of the monitor in the II+ package
	iieSystemOffset = 0x4000 // offset of the system ROM in the IIe package
)

// ROM is the system ROM and the optional Disk II boot ROM.
type ROM struct {
	// System covers $C000 to $FFFF. The $C000 page itself is never visible.
	// Areas not covered by the ROM data are filled with 0xff
	System [0x4000]uint8

	// Disk II boot ROM if one was found in the ROM package. nil otherwise
	Boot []uint8

	// the model suggested by the ROM data when the requested model was Auto
	Model Model
}

// NewROM is the preferred method of initialisation for the ROM type. The
// layout of the ROM data is decided by its size. If model is Auto then the
// returned ROM will have a model suggested by the size of the data.
func NewROM(data []uint8, model Model) (*ROM, error) {
	rom := &ROM{Model: model}
	for i := range rom.System {
		rom.System[i] = fill
	}

	var suggested Model

	switch len(data) {
	case romSizeMonitor:
		copy(rom.System[monitorOffset:], data)
		suggested = AppleIIPlus
	case romSizeSystem:
		copy(rom.System[:], data)
		suggested = AppleIIe
	case romSizeIIPlus:
		copy(rom.System[monitorOffset:], data[iiPlusMonitor:])
		rom.Boot = extractBootROM(data)
		suggested = AppleIIPlus
	case romSizeIIe:
		copy(rom.System[:], data[iieSystemOffset:])
		rom.Boot = extractBootROM(data)
		suggested = AppleIIe
	case 0:
		return nil, curated.Errorf(RomError, "no data")
	default:
		return nil, curated.Errorf(RomError, "unsupported size (%d bytes)", len(data))
	}

	if rom.Model == Auto {
		rom.Model = suggested
	}

	logger.Logf(logger.Allow, "memory", "rom: %d bytes for %s", len(data), rom.Model)

	return rom, nil
}

// the boot ROM in a ROM package is recognised by the LDX #$20 instruction at
// the start of the code
func extractBootROM(data []uint8) []uint8 {
	b := data[bootROMOffset : bootROMOffset+bootROMSize]
	if b[0] != 0xa2 || b[1] != 0x20 {
		logger.Logf(logger.Allow, "memory", "rom: no Disk II boot ROM in package")
		return nil
	}
	boot := make([]uint8, bootROMSize)
	copy(boot, b)
	return boot
}

// BootROM checks that the data is usable as a Disk II boot ROM. The data is
// copied.
func BootROM(data []uint8) ([]uint8, error) {
	if len(data) != bootROMSize {
		return nil, curated.Errorf(RomError, "boot rom must be 256 bytes")
	}
	if data[0] != 0xa2 || data[1] != 0x20 {
		logger.Logf(logger.Allow, "memory", "rom: boot rom does not look like a Disk II boot ROM")
	}
	boot := make([]uint8, bootROMSize)
	copy(boot, data)
	return boot, nil
}

// read returns the ROM value for an address in the range $C000 to $FFFF
func (rom *ROM) read(address uint16) uint8 {
	return rom.System[address&0x3fff]
}
