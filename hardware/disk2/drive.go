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

import (
	"fmt"

	"github.com/jetsetilly/gopher2e/hardware/disk2/diskimage"
)

// MotorState is the state of the spindle motor of a drive.
type MotorState int

// List of valid MotorState values.
const (
	Idle MotorState = iota
	SpinningUp
	Ready
)

func (m MotorState) String() string {
	switch m {
	case Idle:
		return "idle"
	case SpinningUp:
		return "spinning up"
	case Ready:
		return "ready"
	}
	return "unknown"
}

// SpinDownCycles is the number of cycles the motor keeps running after the
// motor off switch has been accessed.
const SpinDownCycles = 1000000

// MaxQuarterTrack is the outermost position of the head. Track 34.
const MaxQuarterTrack = (diskimage.NumTracks - 1) * 4

// DriveState is the part of a drive that is saved in a snapshot. It does not
// include the disk image.
type DriveState struct {
	QuarterTrack int

	Motor        MotorState
	MotorOnAt    uint64
	SpinningDown bool
	MotorOffAt   uint64

	Head Head

	// the cycle that Head is up to date with
	Synced uint64

	Writing   bool
	WriteData uint8

	// identity of the inserted disk image
	Identity string
}

// Drive is one of the two Disk II drives attached to the controller.
type Drive struct {
	DriveState

	image   *diskimage.Image
	spinUp  uint64
	protect bool
}

func (d *Drive) String() string {
	s := fmt.Sprintf("track %d", d.Track())
	if d.HalfTrack() {
		s = fmt.Sprintf("%s.5", s)
	}
	s = fmt.Sprintf("%s, %s", s, d.Motor)
	if d.SpinningDown {
		s = fmt.Sprintf("%s (stopping)", s)
	}
	if d.image == nil {
		return fmt.Sprintf("%s, empty", s)
	}
	return fmt.Sprintf("%s, %s", s, d.image.Format)
}

// Image returns the inserted disk image. Can be nil.
func (d *Drive) Image() *diskimage.Image {
	return d.image
}

// Track returns the whole track the head is over.
func (d *Drive) Track() int {
	return d.QuarterTrack / 4
}

// HalfTrack returns true if the head is between two tracks.
func (d *Drive) HalfTrack() bool {
	return d.QuarterTrack%4 != 0
}

// WriteProtected returns true if the inserted disk can not be written to.
func (d *Drive) WriteProtected() bool {
	return d.protect || (d.image != nil && d.image.WriteProtected)
}

// the nibbles of the track under the head. nil if there is no disk
func (d *Drive) track() []uint8 {
	if d.image == nil {
		return nil
	}
	return d.image.Tracks[d.Track()]
}

// enabled is true if the drive is receiving power
func (d *Drive) enabled() bool {
	return d.Motor != Idle
}

// catchUp brings the drive up to date with the cycle. the rotate function is
// called for every stretch of time that the disk is rotating at full speed
func (d *Drive) catchUp(to uint64, rotate func(n uint64)) {
	for d.Synced < to {
		stop := to
		if d.SpinningDown && d.MotorOffAt < stop {
			stop = d.MotorOffAt
		}

		switch d.Motor {
		case Idle:
			d.Synced = to
		case SpinningUp:
			ready := d.MotorOnAt + d.spinUp
			if ready > stop {
				d.Synced = stop
			} else {
				d.Motor = Ready
				if ready > d.Synced {
					d.Synced = ready
				}
			}
		case Ready:
			if stop > d.Synced {
				rotate(stop - d.Synced)
				d.Synced = stop
			}
		}

		if d.SpinningDown && d.Synced >= d.MotorOffAt {
			d.Motor = Idle
			d.SpinningDown = false
		}
	}
}

// tickHead moves the disk one cycle at a time
func (d *Drive) tickHead(n uint64) {
	trk := d.track()
	for ; n > 0; n-- {
		if d.Head.tick(trk) && d.Writing && len(trk) > 0 && !d.WriteProtected() {
			i := (d.Head.Index + len(trk) - 1) % len(trk)
			d.image.Write(d.Track(), i, d.WriteData)
		}
	}
}

// advanceHead moves the disk in one step. it is not used in write mode
func (d *Drive) advanceHead(n uint64) {
	if d.Writing {
		d.tickHead(n)
		return
	}
	d.Head.advance(d.track(), n)
}

func (d *Drive) motorOn(cycle uint64) {
	switch d.Motor {
	case Idle:
		d.Motor = SpinningUp
		d.MotorOnAt = cycle
		if d.spinUp == 0 {
			d.Motor = Ready
		}
	default:
		d.SpinningDown = false
	}
}

func (d *Drive) motorOff(cycle uint64) {
	if d.Motor == Idle || d.SpinningDown {
		return
	}
	d.SpinningDown = true
	d.MotorOffAt = cycle + SpinDownCycles
}

// step the head according to the state of the four phase magnets. returns
// true if the head moved
func (d *Drive) step(phases uint8) bool {
	cur := (d.QuarterTrack / 2) & 3
	up := phases&(1<<((cur+1)&3)) != 0
	down := phases&(1<<((cur+3)&3)) != 0

	// no magnet next to the head or both magnets pulling
	if up == down {
		return false
	}

	n := d.QuarterTrack
	if up {
		n += 2
	} else {
		n -= 2
	}
	if n < 0 {
		n = 0
	} else if n > MaxQuarterTrack {
		n = MaxQuarterTrack
	}

	if n == d.QuarterTrack {
		return false
	}
	d.QuarterTrack = n

	return true
}

// hand the motor over to another drive
func (d *Drive) handover(to *Drive) {
	to.Motor = d.Motor
	to.MotorOnAt = d.MotorOnAt
	to.SpinningDown = d.SpinningDown
	to.MotorOffAt = d.MotorOffAt
	to.Writing = d.Writing
	to.WriteData = d.WriteData

	d.Motor = Idle
	d.SpinningDown = false
	d.Writing = false
}
