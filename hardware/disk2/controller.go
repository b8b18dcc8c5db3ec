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

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware/disk2/diskimage"
	"github.com/jetsetilly/gopher2e/hardware/preferences"
	"github.com/jetsetilly/gopher2e/logger"
	"github.com/jetsetilly/gopher2e/random"
)

// DriveError is the pattern for errors caused by a bad drive number.
const DriveError = "disk2: %v"

// NumDrives is the number of drives that can be attached to the controller.
const NumDrives = 2

// the value returned by the odd numbered registers
const fill = 0xff

// Controller registers. The even numbered phase registers turn a magnet off
// and the odd numbered registers turn it on.
const (
	RegPhase0Off = 0x0
	RegMotorOff  = 0x8
	RegMotorOn   = 0x9
	RegDrive1    = 0xa
	RegDrive2    = 0xb
	RegQ6L       = 0xc
	RegQ6H       = 0xd
	RegQ7L       = 0xe
	RegQ7H       = 0xf
)

// Clock is the source of the CPU cycle count.
type Clock interface {
	Cycles() uint64
}

// State is the state of the controller and drives that is saved in a
// snapshot.
type State struct {
	Drives   [NumDrives]DriveState
	Selected int
	Phases   uint8
	Q6       bool
	Q7       bool
}

// Controller is a Disk II interface card with two drives. It implements the
// memory.Peripheral interface.
type Controller struct {
	prefs *preferences.Preferences
	clock Clock
	rnd   *random.Random

	boot []uint8

	drives   [NumDrives]*Drive
	selected int

	// the four stepper magnets. bit 0 is phase 0
	phases uint8

	q6 bool
	q7 bool

	timing Timing
}

// NewController is the preferred method of initialisation for the Controller
// type. The prefs argument can be nil and the boot ROM can be nil.
func NewController(prefs *preferences.Preferences, boot []uint8) *Controller {
	c := &Controller{
		prefs: prefs,
		boot:  boot,
		rnd:   random.NewRandom(nil),
	}
	for i := range c.drives {
		c.drives[i] = &Drive{}
	}
	c.Reset()
	return c
}

// Plumb the clock into the controller. The controller is unusable until it
// has a clock.
func (c *Controller) Plumb(clock Clock) {
	c.clock = clock
	c.rnd = random.NewRandom(clock)
	for _, d := range c.drives {
		d.Synced = clock.Cycles()
		d.Head.Valid = false
	}
}

// Reset the controller. Disks stay in the drives but the motor stops
// immediately.
func (c *Controller) Reset() {
	accelerated := true
	spinUp := uint64(preferences.DefaultSpinUp)
	protect := false
	if c.prefs != nil {
		accelerated = c.prefs.Accelerated.Get().(bool)
		spinUp = uint64(c.prefs.SpinUp.Get().(int))
		protect = c.prefs.WriteProtect.Get().(bool)
	}

	if accelerated {
		c.timing = NewAccelerated()
	} else {
		c.timing = NewExact()
	}

	c.selected = 0
	c.phases = 0
	c.q6 = false
	c.q7 = false

	for _, d := range c.drives {
		d.Motor = Idle
		d.SpinningDown = false
		d.Writing = false
		d.spinUp = spinUp
		d.protect = protect
		if c.clock != nil {
			d.Synced = c.clock.Cycles()
		}
	}
}

func (c *Controller) String() string {
	s := fmt.Sprintf("drive %d selected, %s", c.selected+1, c.timing)
	for i, d := range c.drives {
		s = fmt.Sprintf("%s\n%d: %s", s, i+1, d)
	}
	return s
}

// Timing returns the timing strategy in use.
func (c *Controller) Timing() Timing {
	return c.timing
}

// Drive returns the drive with the number. Drives are numbered from zero.
func (c *Controller) Drive(drive int) (*Drive, error) {
	if drive < 0 || drive >= NumDrives {
		return nil, curated.Errorf(DriveError, fmt.Sprintf("no drive %d", drive))
	}
	return c.drives[drive], nil
}

// SetBootROM changes the ROM that appears in the slot. Can be nil.
func (c *Controller) SetBootROM(boot []uint8) {
	c.boot = boot
}

// ROM implements the memory.Peripheral interface.
func (c *Controller) ROM() []uint8 {
	return c.boot
}

func (c *Controller) cycles() uint64 {
	if c.clock == nil {
		return 0
	}
	return c.clock.Cycles()
}

// Tick is called once every CPU cycle.
func (c *Controller) Tick() {
	c.timing.Tick(c.drives[c.selected], c.cycles())
}

// Sync brings the selected drive up to date with the clock.
func (c *Controller) Sync() {
	c.timing.Sync(c.drives[c.selected], c.cycles())
}

// InsertDisk puts a disk image into a drive. Any disk already in the drive is
// replaced.
func (c *Controller) InsertDisk(drive int, img *diskimage.Image) error {
	d, err := c.Drive(drive)
	if err != nil {
		return err
	}
	if img == nil {
		return curated.Errorf(diskimage.DiskImageError, "no disk image")
	}

	c.Sync()
	d.image = img
	d.Identity = img.Identity
	c.timing.Reset()

	logger.Logf(logger.Allow, "disk2", "drive %d: %s", drive+1, img.Format)
	if d.WriteProtected() {
		logger.Logf(logger.Allow, "disk2", "drive %d: write protected", drive+1)
	}

	return nil
}

// EjectDisk removes the disk image from the drive and returns it. Returns nil
// if there is no disk in the drive.
func (c *Controller) EjectDisk(drive int) *diskimage.Image {
	d, err := c.Drive(drive)
	if err != nil {
		return nil
	}
	c.Sync()
	img := d.image
	d.image = nil
	d.Identity = ""
	return img
}

// IORead implements the memory.Peripheral interface.
func (c *Controller) IORead(reg uint8) uint8 {
	c.access(reg)
	if reg&0x01 == 0x01 {
		return fill
	}
	return c.data()
}

// IOWrite implements the memory.Peripheral interface.
func (c *Controller) IOWrite(reg uint8, data uint8) {
	c.access(reg)
	if reg == RegQ6H || reg == RegQ7H {
		c.drives[c.selected].WriteData = data
	}
}

// the value of the data register
func (c *Controller) data() uint8 {
	d := c.drives[c.selected]

	if c.q7 {
		return d.WriteData
	}

	// sense write protect
	if c.q6 {
		if d.WriteProtected() {
			return 0x80
		}
		return 0x00
	}

	if d.image == nil {
		if d.enabled() {
			return c.rnd.Uint8()
		}
		return d.Head.Latch
	}

	v := d.Head.read(d.track())
	if v&0x80 == 0x80 {
		c.timing.Observe(d, EventByte, c.cycles())
	} else {
		c.timing.Observe(d, EventPoll, c.cycles())
	}

	return v
}

// access a register. the effect of an access is the same for reads and writes
func (c *Controller) access(reg uint8) {
	cycle := c.cycles()
	d := c.drives[c.selected]

	c.timing.Sync(d, cycle)

	reg &= 0x0f

	switch {
	case reg <= 0x07:
		bit := uint8(1) << (reg >> 1)
		if reg&0x01 == 0x01 {
			c.phases |= bit
		} else {
			c.phases &^= bit
		}
		if d.enabled() && d.step(c.phases) {
			c.timing.Observe(d, EventStep, cycle)
		}

	case reg == RegMotorOff:
		d.motorOff(cycle)

	case reg == RegMotorOn:
		d.motorOn(cycle)

	case reg == RegDrive1 || reg == RegDrive2:
		n := int(reg - RegDrive1)
		if n != c.selected {
			to := c.drives[n]
			to.catchUp(cycle, to.tickHead)
			d.handover(to)
			c.selected = n
		}

	case reg == RegQ6L:
		c.q6 = false

	case reg == RegQ6H:
		c.q6 = true

	case reg == RegQ7L:
		c.q7 = false
		d.Writing = false

	case reg == RegQ7H:
		if !c.q7 {
			c.q7 = true
			d.Writing = true
			c.timing.Observe(d, EventWriteMode, cycle)
		}
	}
}

// Snapshot returns a copy of the controller state.
func (c *Controller) Snapshot() *State {
	c.Sync()
	s := &State{
		Selected: c.selected,
		Phases:   c.phases,
		Q6:       c.q6,
		Q7:       c.q7,
	}
	for i, d := range c.drives {
		s.Drives[i] = d.DriveState
	}
	return s
}

// Plumb a previously snapshotted state into the controller. Disk images are
// not part of the state and remain in the drives.
func (c *Controller) PlumbState(s *State) {
	c.selected = s.Selected
	c.phases = s.Phases
	c.q6 = s.Q6
	c.q7 = s.Q7
	for i, d := range c.drives {
		identity := d.Identity
		d.DriveState = s.Drives[i]
		if d.Identity != identity {
			logger.Logf(logger.Allow, "disk2", "drive %d: state is for %s", i+1, d.Identity)
		}
		d.Identity = identity
	}
	c.timing.Reset()
}
