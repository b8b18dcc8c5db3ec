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

package diskimage_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware/disk2/diskimage"
	"github.com/jetsetilly/gopher2e/test"
)

func pseudoRandomDisk(seed int64) []uint8 {
	rnd := rand.New(rand.NewSource(seed))
	data := make([]uint8, diskimage.DSKSize)
	for i := range data {
		data[i] = uint8(rnd.Intn(256))
	}
	return data
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []diskimage.Format{diskimage.DOS, diskimage.ProDOS} {
		data := pseudoRandomDisk(int64(format) + 1)

		img, err := diskimage.NewImage(data, format, "")
		test.DemandSuccess(t, err, format)

		for trk := range img.Tracks {
			test.ExpectEquality(t, len(img.Tracks[trk]), diskimage.TrackSize, format, trk)
		}

		out, err := img.Sectors()
		test.DemandSuccess(t, err, format)
		test.ExpectSuccess(t, bytes.Equal(out, data), format)
	}
}

func TestTrackLayout(t *testing.T) {
	data := pseudoRandomDisk(10)
	img, err := diskimage.NewImage(data, diskimage.DOS, "")
	test.DemandSuccess(t, err)

	trk := img.Tracks[17]

	// 48 sync bytes lead into the first address field
	for i := 0; i < 48; i++ {
		test.ExpectEquality(t, trk[i], uint8(0xff))
	}
	test.ExpectSuccess(t, bytes.Equal(trk[48:51], diskimage.AddressProlog[:]))

	fields := diskimage.AddressFields(trk)
	test.DemandEquality(t, len(fields), diskimage.NumSectors)
	for s, f := range fields {
		test.ExpectEquality(t, f.Volume, uint8(diskimage.Volume))
		test.ExpectEquality(t, f.Track, uint8(17))
		test.ExpectEquality(t, f.Sector, uint8(s))
	}

	// physical sector 1 holds DOS logical sector 7
	off := 48 + 14 + 6 + 3 + diskimage.EncodedSectorSize + 3 + 27
	test.ExpectSuccess(t, bytes.Equal(trk[off:off+3], diskimage.AddressProlog[:]))
	off += 14 + 6
	test.ExpectSuccess(t, bytes.Equal(trk[off:off+3], diskimage.DataProlog[:]))
	sector, err := diskimage.Decode62(trk[off+3:])
	test.DemandSuccess(t, err)
	l := 17*diskimage.TrackDataSize + 7*diskimage.SectorSize
	test.ExpectSuccess(t, bytes.Equal(sector, data[l:l+diskimage.SectorSize]))

	stats := img.Stats(17)
	test.ExpectEquality(t, stats.Length, diskimage.TrackSize)
	test.ExpectEquality(t, stats.AddressFields, diskimage.NumSectors)
	test.ExpectEquality(t, stats.DataFields, diskimage.NumSectors)
	test.ExpectEquality(t, stats.Invalid, 0)
	test.ExpectSuccess(t, img.SelfSync(17))
}

func TestBadSize(t *testing.T) {
	_, err := diskimage.NewImage(make([]uint8, 1000), diskimage.DOS, "")
	test.ExpectSuccess(t, curated.Is(err, diskimage.DiskImageError))

	_, err = diskimage.NewImage(make([]uint8, diskimage.DSKSize), diskimage.NIB, "")
	test.ExpectSuccess(t, curated.Is(err, diskimage.DiskImageError))

	_, err = diskimage.NewImage(nil, diskimage.ProDOS, "")
	test.ExpectSuccess(t, curated.Is(err, diskimage.DiskImageError))
}

func TestNIB(t *testing.T) {
	data := make([]uint8, diskimage.NIBSize)
	for i := range data {
		data[i] = uint8(i) | 0x80
	}
	data[diskimage.TrackSize*3+10] = 0x00

	img, err := diskimage.NewImage(data, diskimage.NIB, "")
	test.DemandSuccess(t, err)

	// stored verbatim
	for trk := range img.Tracks {
		l := trk * diskimage.TrackSize
		test.ExpectSuccess(t, bytes.Equal(img.Tracks[trk], data[l:l+diskimage.TrackSize]), trk)
	}
	test.ExpectSuccess(t, img.SelfSync(0))
	test.ExpectFailure(t, img.SelfSync(3))
	test.ExpectEquality(t, img.Stats(3).Invalid, 1)

	// no sectors in this data
	_, err = img.Sectors()
	test.ExpectSuccess(t, curated.Is(err, diskimage.DiskImageError))
}

func TestSave(t *testing.T) {
	data := pseudoRandomDisk(20)
	img, err := diskimage.NewImage(data, diskimage.ProDOS, "")
	test.DemandSuccess(t, err)

	var b bytes.Buffer
	test.DemandSuccess(t, img.Save(&b))
	test.DemandEquality(t, b.Len(), diskimage.NIBSize)

	nib, err := diskimage.NewImage(b.Bytes(), diskimage.NIB, "")
	test.DemandSuccess(t, err)
	for trk := range img.Tracks {
		test.ExpectSuccess(t, bytes.Equal(img.Tracks[trk], nib.Tracks[trk]), trk)
	}

	// NIB images decode in DOS order
	out, err := nib.Sectors()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(out), diskimage.DSKSize)
}

func TestWrite(t *testing.T) {
	data := pseudoRandomDisk(30)
	img, err := diskimage.NewImage(data, diskimage.DOS, "")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, img.Modified())

	// damage the data field of physical sector 0 on track 5
	off := 48 + 14 + 6 + 3 + 10
	img.Write(5, off, 0xaa)
	test.ExpectSuccess(t, img.Modified())
	test.ExpectEquality(t, img.Tracks[5][off], uint8(0xaa))

	_, err = img.Sectors()
	test.ExpectSuccess(t, curated.Is(err, diskimage.DiskImageError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "track 5 sector 0"))

	// writes to a protected image are ignored
	img2, err := diskimage.NewImage(data, diskimage.DOS, "")
	test.DemandSuccess(t, err)
	img2.WriteProtected = true
	img2.Write(5, off, 0xaa)
	test.ExpectFailure(t, img2.Modified())
	_, err = img2.Sectors()
	test.ExpectSuccess(t, err)

	// saving clears the modified flag
	test.DemandSuccess(t, img.Save(&bytes.Buffer{}))
	test.ExpectFailure(t, img.Modified())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	data := pseudoRandomDisk(40)

	write := func(name string, d []uint8) string {
		pth := filepath.Join(dir, name)
		test.DemandSuccess(t, os.WriteFile(pth, d, 0o644))
		return pth
	}

	img, err := diskimage.Load(write("test.dsk", data))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Format, diskimage.DOS)
	test.ExpectEquality(t, img.Identity, filepath.Join(dir, "test.dsk"))
	test.ExpectFailure(t, img.WriteProtected)

	img, err = diskimage.Load(write("test.PO", data))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Format, diskimage.ProDOS)
	out, err := img.Sectors()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(out, data))

	// unknown extensions are decided by size
	img, err = diskimage.Load(write("test.img", data))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Format, diskimage.DOS)

	_, err = diskimage.Load(write("test.bin", data[:1000]))
	test.ExpectSuccess(t, curated.Is(err, diskimage.DiskImageError))

	_, err = diskimage.Load(filepath.Join(dir, "missing.dsk"))
	test.ExpectSuccess(t, curated.Is(err, diskimage.DiskImageError))

	// read only files are write protected
	pth := write("protected.do", data)
	test.DemandSuccess(t, os.Chmod(pth, 0o444))
	img, err = diskimage.Load(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, img.WriteProtected)

	test.ExpectSuccess(t, strings.Contains(img.Describe(), "write protected"))
	test.ExpectSuccess(t, strings.HasPrefix(img.Describe(), "DSK (DOS order)"))
}
