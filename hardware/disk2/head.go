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

package disk2

// Timing of the disk under the head.
const (
	CyclesPerBit  = 4
	CyclesPerByte = CyclesPerBit * 8
)

// Head is the position of the disk under the read/write head and the state of
// the data latch.
type Head struct {
	// the byte of the track currently passing under the head
	Index int

	// number of cycles into the current byte. a bit is shifted in every
	// CyclesPerBit cycles
	Phase int

	// the last complete byte and whether it has been read
	Latch uint8
	Valid bool
}

// advance the head by a single cycle. returns true if a byte boundary has
// been crossed
func (h *Head) tick(trk []uint8) bool {
	h.Phase++
	if h.Phase < CyclesPerByte {
		return false
	}
	h.Phase = 0

	if len(trk) > 0 {
		h.Index %= len(trk)
		h.Latch = trk[h.Index]
		h.Valid = true
		h.Index = (h.Index + 1) % len(trk)
	}

	return true
}

// advance the head by any number of cycles. the result is the same as calling
// tick() n times
func (h *Head) advance(trk []uint8, n uint64) {
	total := uint64(h.Phase) + n
	h.Phase = int(total % CyclesPerByte)

	done := total / CyclesPerByte
	if done == 0 || len(trk) == 0 {
		return
	}

	l := uint64(len(trk))
	idx := uint64(h.Index) % l
	h.Latch = trk[(idx+done-1)%l]
	h.Valid = true
	h.Index = int((idx + done) % l)
}

// read the data register. a complete byte is returned once. otherwise the
// bits of the next byte that have been shifted in so far
func (h *Head) read(trk []uint8) uint8 {
	if h.Valid {
		h.Valid = false
		return h.Latch
	}
	return h.shift(trk)
}

func (h *Head) shift(trk []uint8) uint8 {
	if len(trk) == 0 {
		return 0
	}
	bits := h.Phase / CyclesPerBit
	return trk[h.Index%len(trk)] >> (8 - bits)
}
