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
)

// the 64 disk bytes used by the 6-and-2 scheme. every value has the high bit
// set and no more than one pair of consecutive zero bits
var writeTable = [64]uint8{
	0x96, 0x97, 0x9a, 0x9b, 0x9d, 0x9e, 0x9f, 0xa6,
	0xa7, 0xab, 0xac, 0xad, 0xae, 0xaf, 0xb2, 0xb3,
	0xb4, 0xb5, 0xb6, 0xb7, 0xb9, 0xba, 0xbb, 0xbc,
	0xbd, 0xbe, 0xbf, 0xcb, 0xcd, 0xce, 0xcf, 0xd3,
	0xd6, 0xd7, 0xd9, 0xda, 0xdb, 0xdc, 0xdd, 0xde,
	0xdf, 0xe5, 0xe6, 0xe7, 0xe9, 0xea, 0xeb, 0xec,
	0xed, 0xee, 0xef, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6,
	0xf7, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd, 0xfe, 0xff,
}

// inverse of writeTable. invalid disk bytes map to 0xff
var readTable [256]uint8

func init() {
	for i := range readTable {
		readTable[i] = 0xff
	}
	for i, v := range writeTable {
		readTable[v] = uint8(i)
	}
}

// EncodedSectorSize is the number of disk bytes in the data field of a sector,
// including the checksum.
const EncodedSectorSize = 343

// number of bytes in the secondary buffer of the 6-and-2 scheme
const auxSize = 86

// Encode44 returns the two disk bytes for a value in the 4-and-4 scheme. The
// first byte holds the odd bits and the second holds the even bits.
func Encode44(v uint8) (uint8, uint8) {
	return (v >> 1) | 0xaa, v | 0xaa
}

// Decode44 returns the value of two disk bytes in the 4-and-4 scheme.
func Decode44(odd uint8, even uint8) uint8 {
	return ((odd << 1) | 0x01) & even
}

// the two low bits of a byte are stored in reverse order in the secondary
// buffer
func swapLow(v uint8) uint8 {
	return (v&0x01)<<1 | (v&0x02)>>1
}

// Encode62 encodes a 256 byte sector with the 6-and-2 scheme. The returned
// slice is EncodedSectorSize bytes long.
//
// The two low bits of every byte are collected into a secondary buffer of 86
// bytes which is written first. The first disk byte carries the low bits of
// data bytes 0, 86 and 172. Every value is XORed with the previous value
// before translation and the final byte is the checksum.
func Encode62(data []uint8) []uint8 {
	if len(data) != SectorSize {
		panic(fmt.Sprintf("diskimage: sector must be %d bytes", SectorSize))
	}

	var buf [auxSize + SectorSize]uint8

	for i := 0; i < auxSize; i++ {
		v := swapLow(data[i])
		v |= swapLow(data[i+auxSize]) << 2
		if i+auxSize*2 < SectorSize {
			v |= swapLow(data[i+auxSize*2]) << 4
		}
		buf[i] = v
	}

	for i := 0; i < SectorSize; i++ {
		buf[auxSize+i] = data[i] >> 2
	}

	out := make([]uint8, 0, EncodedSectorSize)

	var prev uint8
	for _, v := range buf {
		out = append(out, writeTable[(v^prev)&0x3f])
		prev = v
	}
	out = append(out, writeTable[prev&0x3f])

	return out
}

// Decode62 decodes the data field of a sector encoded with the 6-and-2 scheme.
// The nibbles slice must contain at least EncodedSectorSize bytes. An error is
// returned if any disk byte is not a valid 6-and-2 value or if the checksum
// does not match.
func Decode62(nibbles []uint8) ([]uint8, error) {
	if len(nibbles) < EncodedSectorSize {
		return nil, fmt.Errorf("data field too short (%d bytes)", len(nibbles))
	}

	var buf [auxSize + SectorSize]uint8

	var prev uint8
	for i := range buf {
		v := readTable[nibbles[i]]
		if v == 0xff {
			return nil, fmt.Errorf("invalid disk byte (%#02x) at offset %d", nibbles[i], i)
		}
		prev ^= v
		buf[i] = prev
	}

	chk := readTable[nibbles[EncodedSectorSize-1]]
	if chk == 0xff || chk != prev {
		return nil, fmt.Errorf("checksum mismatch")
	}

	data := make([]uint8, SectorSize)
	for i := 0; i < SectorSize; i++ {
		low := buf[i%auxSize] >> ((i / auxSize) * 2)
		data[i] = buf[auxSize+i]<<2 | swapLow(low&0x03)
	}

	return data, nil
}
