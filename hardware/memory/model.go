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

// Model identifies the member of the Apple II family being emulated.
type Model int

// List of valid Model values. The Auto value means the model should be decided
// by the size of the ROM.
const (
	Auto Model = iota
	AppleII
	AppleIIPlus
	AppleIIe
	AppleIIeEnhanced
)

func (m Model) String() string {
	switch m {
	case Auto:
		return "AUTO"
	case AppleII:
		return "II"
	case AppleIIPlus:
		return "II+"
	case AppleIIe:
		return "IIE"
	case AppleIIeEnhanced:
		return "IIE-ENHANCED"
	}
	return "unknown model"
}

// ParseModel converts a string to a Model. The string is not case sensitive
// and an empty string is the same as "AUTO".
func ParseModel(s string) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "AUTO":
		return Auto, nil
	case "II":
		return AppleII, nil
	case "II+", "IIPLUS":
		return AppleIIPlus, nil
	case "IIE":
		return AppleIIe, nil
	case "IIE-ENHANCED", "IIEENHANCED":
		return AppleIIeEnhanced, nil
	}
	return Auto, fmt.Errorf("unrecognised model (%s)", s)
}

// IsIIe returns true if the model has auxiliary memory and the IIe soft
// switches.
func (m Model) IsIIe() bool {
	return m == AppleIIe || m == AppleIIeEnhanced
}

// CMOS returns true if the model uses the 65C02.
func (m Model) CMOS() bool {
	return m == AppleIIeEnhanced
}
