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

package diskimage

import (
	"fmt"
	"strings"
)

// NibbleStats summarises the content of a single track.
type NibbleStats struct {
	Length        int
	Sync          int
	AddressFields int
	DataFields    int

	// bytes that do not have the high bit set. these can not be read by the
	// disk controller as a complete byte
	Invalid int
}

func (s NibbleStats) String() string {
	return fmt.Sprintf("%d bytes, %d sync, %d address, %d data, %d invalid",
		s.Length, s.Sync, s.AddressFields, s.DataFields, s.Invalid)
}

// Stats returns the NibbleStats for a track.
func (img *Image) Stats(track int) NibbleStats {
	trk := img.Tracks[track]

	s := NibbleStats{
		Length:        len(trk),
		AddressFields: len(AddressFields(trk)),
	}

	for i, v := range trk {
		if v == 0xff {
			s.Sync++
		}
		if v&0x80 == 0 {
			s.Invalid++
		}
		if isProlog(trk, i, DataProlog) {
			s.DataFields++
		}
	}

	return s
}

// SelfSync returns true if every byte in the track has the high bit set.
func (img *Image) SelfSync(track int) bool {
	for _, v := range img.Tracks[track] {
		if v&0x80 == 0 {
			return false
		}
	}
	return true
}

// Describe returns a summary of the image suitable for the monitor.
func (img *Image) Describe() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s", img.Format)
	if img.Identity != "" {
		fmt.Fprintf(&b, " [%s]", img.Identity)
	}
	if img.WriteProtected {
		b.WriteString(" write protected")
	}
	if img.Modified() {
		b.WriteString(" modified")
	}
	b.WriteString("\n")

	for t := range img.Tracks {
		fmt.Fprintf(&b, "%02d: %s\n", t, img.Stats(t))
	}

	return b.String()
}
