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

	"github.com/jetsetilly/gopher2e/curated"
)

// AddressField is the decoded content of a sector's address field.
type AddressField struct {
	Volume uint8
	Track  uint8
	Sector uint8

	// the index in the track of the first byte after the prolog
	offset int
}

// find the next occurrence of a prolog in the track starting at idx. the track
// is circular and the search stops after one revolution. returns the index of
// the byte following the prolog or -1
func findProlog(trk []uint8, idx int, prolog [3]uint8) int {
	n := len(trk)
	for i := 0; i < n; i++ {
		if isProlog(trk, (idx+i)%n, prolog) {
			return (idx + i + 3) % n
		}
	}
	return -1
}

func isProlog(trk []uint8, i int, prolog [3]uint8) bool {
	n := len(trk)
	return trk[i] == prolog[0] && trk[(i+1)%n] == prolog[1] && trk[(i+2)%n] == prolog[2]
}

// copy n bytes from a circular track starting at idx
func circular(trk []uint8, idx int, n int) []uint8 {
	b := make([]uint8, n)
	for i := range b {
		b[i] = trk[(idx+i)%len(trk)]
	}
	return b
}

// AddressFields returns every address field with a correct checksum found in
// the track, in the order in which they pass under the head.
func AddressFields(trk []uint8) []AddressField {
	var fields []AddressField

	for i := range trk {
		if !isProlog(trk, i, AddressProlog) {
			continue
		}

		off := (i + 3) % len(trk)
		b := circular(trk, off, 8)
		vol := Decode44(b[0], b[1])
		t := Decode44(b[2], b[3])
		s := Decode44(b[4], b[5])
		chk := Decode44(b[6], b[7])
		if vol^t^s == chk {
			fields = append(fields, AddressField{
				Volume: vol,
				Track:  t,
				Sector: s,
				offset: off,
			})
		}
	}

	return fields
}

// decodeTrack returns the data of every sector in the track indexed by
// physical sector number
func decodeTrack(trk []uint8, track int) ([NumSectors][]uint8, error) {
	var sectors [NumSectors][]uint8

	for _, a := range AddressFields(trk) {
		if int(a.Track) != track || a.Sector >= NumSectors {
			continue
		}

		// the data prolog must follow closely after the address field
		d := findProlog(trk, a.offset, DataProlog)
		if d == -1 {
			continue
		}
		dist := d - a.offset
		if dist < 0 {
			dist += len(trk)
		}
		if dist > 64 {
			continue
		}

		data, err := Decode62(circular(trk, d, EncodedSectorSize))
		if err != nil {
			return sectors, fmt.Errorf("track %d sector %d: %w", track, a.Sector, err)
		}
		sectors[a.Sector] = data
	}

	for s := range sectors {
		if sectors[s] == nil {
			return sectors, fmt.Errorf("track %d sector %d: not found", track, s)
		}
	}

	return sectors, nil
}

// Sectors decodes the image back into sector data in the order of the
// container the image was created from. Images created from NIB data are
// returned in DOS order. An error is returned if any sector cannot be decoded.
func (img *Image) Sectors() ([]uint8, error) {
	order := img.Format.order()

	data := make([]uint8, DSKSize)
	for t := range img.Tracks {
		sectors, err := decodeTrack(img.Tracks[t], t)
		if err != nil {
			return nil, curated.Errorf(DiskImageError, err)
		}
		for p, s := range sectors {
			copy(data[t*TrackDataSize+order[p]*SectorSize:], s)
		}
	}

	return data, nil
}
