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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/logger"
)

// DiskImageError is the pattern for all errors returned by the loaders.
const DiskImageError = "disk image error: %v"

// Geometry of a 5.25" disk formatted with 16 sectors per track.
const (
	NumTracks     = 35
	NumSectors    = 16
	SectorSize    = 256
	TrackDataSize = NumSectors * SectorSize
	DSKSize       = NumTracks * TrackDataSize

	// length of one track in a NIB file
	TrackSize = 6656
	NIBSize   = NumTracks * TrackSize
)

// Volume is the volume number written to the address fields of converted
// images.
const Volume = 254

// Format of the container the image was created from.
type Format int

// List of valid Format values.
const (
	DOS Format = iota
	ProDOS
	NIB
)

func (f Format) String() string {
	switch f {
	case DOS:
		return "DSK (DOS order)"
	case ProDOS:
		return "PO (ProDOS order)"
	case NIB:
		return "NIB"
	}
	return "unknown format"
}

// physical sector to logical sector for each sector ordering
var dosOrder = [NumSectors]int{0, 7, 14, 6, 13, 5, 12, 4, 11, 3, 10, 2, 9, 1, 8, 15}
var prodosOrder = [NumSectors]int{0, 8, 1, 9, 2, 10, 3, 11, 4, 12, 5, 13, 6, 14, 7, 15}

func (f Format) order() [NumSectors]int {
	if f == ProDOS {
		return prodosOrder
	}
	return dosOrder
}

// Image is the nibblised form of a disk. Once inserted into a drive the image
// belongs to the controller.
type Image struct {
	Tracks [NumTracks][]uint8

	Format Format

	// Identity is the path of the file the image was loaded from. It is used
	// to refer to the image in snapshots
	Identity string

	WriteProtected bool

	// whether a track has been written to since the image was created
	dirty [NumTracks]bool
}

// NewImage creates an Image from the contents of a container. DOS and ProDOS
// images are converted to nibbles. NIB data is used verbatim.
func NewImage(data []uint8, format Format, identity string) (*Image, error) {
	img := &Image{
		Format:   format,
		Identity: identity,
	}

	switch format {
	case DOS, ProDOS:
		if len(data) != DSKSize {
			return nil, curated.Errorf(DiskImageError, fmt.Sprintf("%s must be %d bytes (not %d)", format, DSKSize, len(data)))
		}
		for t := 0; t < NumTracks; t++ {
			img.Tracks[t] = nibbliseTrack(data[t*TrackDataSize:(t+1)*TrackDataSize], t, format.order())
		}
	case NIB:
		if len(data) != NIBSize {
			return nil, curated.Errorf(DiskImageError, fmt.Sprintf("%s must be %d bytes (not %d)", format, NIBSize, len(data)))
		}
		for t := 0; t < NumTracks; t++ {
			img.Tracks[t] = make([]uint8, TrackSize)
			copy(img.Tracks[t], data[t*TrackSize:])
		}
	default:
		return nil, curated.Errorf(DiskImageError, "unknown format")
	}

	return img, nil
}

// FormatFromFilename returns the format implied by the file extension. The
// second return value is false if the extension is not recognised.
func FormatFromFilename(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".dsk", ".do":
		return DOS, true
	case ".po":
		return ProDOS, true
	case ".nib":
		return NIB, true
	}
	return DOS, false
}

// Load reads a disk image from a file. The format is decided by the file
// extension or, if the extension is unknown, by the size of the file.
func Load(filename string) (*Image, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(DiskImageError, err)
	}

	format, ok := FormatFromFilename(filename)
	if !ok {
		switch len(data) {
		case DSKSize:
			format = DOS
		case NIBSize:
			format = NIB
		default:
			return nil, curated.Errorf(DiskImageError, fmt.Sprintf("cannot decide format of %s", filepath.Base(filename)))
		}
		logger.Logf(logger.Allow, "diskimage", "using %s for %s", format, filepath.Base(filename))
	}

	img, err := NewImage(data, format, filename)
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(filename); err == nil {
		img.WriteProtected = info.Mode().Perm()&0o200 == 0
	}

	return img, nil
}

// Write a disk byte to a track. Writing to a write protected image has no
// effect.
func (img *Image) Write(track int, idx int, v uint8) {
	if img.WriteProtected {
		return
	}
	img.Tracks[track][idx] = v
	img.dirty[track] = true
}

// Modified returns true if any track has been written to.
func (img *Image) Modified() bool {
	for _, d := range img.dirty {
		if d {
			return true
		}
	}
	return false
}

// Save writes the image in the NIB form.
func (img *Image) Save(w io.Writer) error {
	for t := range img.Tracks {
		trk := img.Tracks[t]
		if len(trk) > TrackSize {
			trk = trk[:TrackSize]
		}
		if _, err := w.Write(trk); err != nil {
			return curated.Errorf(DiskImageError, err)
		}
		if len(trk) < TrackSize {
			pad := make([]uint8, TrackSize-len(trk))
			for i := range pad {
				pad[i] = 0xff
			}
			if _, err := w.Write(pad); err != nil {
				return curated.Errorf(DiskImageError, err)
			}
		}
	}
	for i := range img.dirty {
		img.dirty[i] = false
	}
	return nil
}

// nibbliseTrack converts 16 sectors of data into the nibbles of one track
func nibbliseTrack(data []uint8, track int, order [NumSectors]int) []uint8 {
	trk := make([]uint8, 0, TrackSize)

	sync := func(n int) {
		for i := 0; i < n; i++ {
			trk = append(trk, 0xff)
		}
	}
	field44 := func(v uint8) {
		a, b := Encode44(v)
		trk = append(trk, a, b)
	}

	sync(48)

	for s := 0; s < NumSectors; s++ {
		// address field
		trk = append(trk, AddressProlog[:]...)
		field44(Volume)
		field44(uint8(track))
		field44(uint8(s))
		field44(Volume ^ uint8(track) ^ uint8(s))
		trk = append(trk, Epilog[:]...)

		sync(6)

		// data field
		l := order[s] * SectorSize
		trk = append(trk, DataProlog[:]...)
		trk = append(trk, Encode62(data[l:l+SectorSize])...)
		trk = append(trk, Epilog[:]...)

		sync(27)
	}

	// the remainder of the track is filled with sync bytes
	sync(TrackSize - len(trk))

	return trk
}

// Field markers.
var (
	AddressProlog = [3]uint8{0xd5, 0xaa, 0x96}
	DataProlog    = [3]uint8{0xd5, 0xaa, 0xad}
	Epilog        = [3]uint8{0xde, 0xaa, 0xeb}
)
