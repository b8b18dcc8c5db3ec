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

package monitor

import (
	"github.com/jetsetilly/gopher2e/hardware"
)

// TextScreen returns the 24 lines of the 40 column text screen. The page is
// chosen by the Page2 soft switch. Inverse and flashing characters are shown
// as normal characters.
func TextScreen(m *hardware.Machine) []string {
	base := uint16(0x0400)
	if m.Mem.Switches.Page2 && !m.Mem.Switches.Store80 {
		base = 0x0800
	}

	lines := make([]string, 24)
	for row := range lines {
		addr := base + uint16(row&7)*0x80 + uint16(row>>3)*0x28
		b := make([]byte, 40)
		for col := range b {
			b[col] = screenCode(m.Mem.Main[addr+uint16(col)])
		}
		lines[row] = string(b)
	}

	return lines
}

// screenCode converts a byte of video memory to ASCII.
func screenCode(c uint8) uint8 {
	if c >= 0xa0 {
		return c & 0x7f
	}
	v := c & 0x3f
	if v < 0x20 {
		v += 0x40
	}
	return v
}
