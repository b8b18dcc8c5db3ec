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

	"github.com/jetsetilly/gopher2e/logger"
)

// Event is a controller access of interest to a Timing strategy.
type Event int

// List of valid Event values.
const (
	// a read of the data register that returned a complete byte
	EventByte Event = iota

	// a read of the data register that returned a partial byte
	EventPoll

	// the head has moved
	EventStep

	// write mode has been switched on
	EventWriteMode
)

// Timing is the strategy used to move the disk under the head. Every strategy
// produces the same data at the same cycles.
type Timing interface {
	// Tick is called once every CPU cycle with the selected drive
	Tick(drv *Drive, cycle uint64)

	// Sync brings the drive up to date with the cycle. It is called before
	// every access of a controller register
	Sync(drv *Drive, cycle uint64)

	// Observe is called after a controller register access. The drive has
	// been synced
	Observe(drv *Drive, ev Event, cycle uint64)

	// Accelerated returns true if the strategy is not currently counting
	// every cycle
	Accelerated() bool

	// Reset is called on controller reset and when a disk is inserted
	Reset()

	String() string
}

// Exact counts every cycle.
type Exact struct{}

// NewExact is the preferred method of initialisation for the Exact type.
func NewExact() *Exact {
	return &Exact{}
}

// Tick implements the Timing interface.
func (e *Exact) Tick(drv *Drive, cycle uint64) {
	drv.catchUp(cycle, drv.tickHead)
}

// Sync implements the Timing interface.
func (e *Exact) Sync(drv *Drive, cycle uint64) {
	drv.catchUp(cycle, drv.tickHead)
}

// Observe implements the Timing interface.
func (e *Exact) Observe(_ *Drive, _ Event, _ uint64) {
}

// Accelerated implements the Timing interface.
func (e *Exact) Accelerated() bool {
	return false
}

// Reset implements the Timing interface.
func (e *Exact) Reset() {
}

func (e *Exact) String() string {
	return "exact"
}

// Thresholds used by the Accelerated strategy.
const (
	// number of consecutive complete bytes read before acceleration begins
	CandidateThreshold = 5

	// stepper chatter is this many head movements within ChatterWindow cycles
	ChatterSteps  = 8
	ChatterWindow = 5000

	// polling of the data register at intervals less than one bit cell for
	// more than this many reads
	PollingLimit = 256
)

// Accelerated uses the same timing as Exact but once a sequential read of a
// track has been detected the position of the disk is calculated only when
// the controller is accessed.
//
// Acceleration falls back to the Exact strategy, permanently until the next
// reset or disk change, for any of the following: write mode is used; the
// disk is read from a half-track; the track contains bytes that are not
// self-sync; the stepper is chattering; the data register is polled faster
// than one bit cell.
type Accelerated struct {
	exact Exact

	promoted bool

	// the reason acceleration has been abandoned. empty if it has not
	fallback string

	candidates int

	lastRead  uint64
	fastPolls int

	// cycles of recent head movements
	steps [ChatterSteps]uint64
	stepN int

	// the position of the head when the track was last checked for bytes
	// that are not self-sync
	verified int
}

// NewAccelerated is the preferred method of initialisation for the
// Accelerated type.
func NewAccelerated() *Accelerated {
	return &Accelerated{verified: -1}
}

// Tick implements the Timing interface.
func (a *Accelerated) Tick(drv *Drive, cycle uint64) {
	if a.promoted {
		return
	}
	a.exact.Tick(drv, cycle)
}

// Sync implements the Timing interface.
func (a *Accelerated) Sync(drv *Drive, cycle uint64) {
	if a.promoted {
		drv.catchUp(cycle, drv.advanceHead)
		return
	}
	a.exact.Sync(drv, cycle)
}

// Observe implements the Timing interface.
func (a *Accelerated) Observe(drv *Drive, ev Event, cycle uint64) {
	if a.fallback != "" {
		return
	}

	switch ev {
	case EventWriteMode:
		a.abandon("write mode")
		return

	case EventStep:
		// the oldest recorded step is replaced by this one
		oldest := a.steps[a.stepN%ChatterSteps]
		a.steps[a.stepN%ChatterSteps] = cycle
		a.stepN++
		if a.stepN > ChatterSteps && cycle-oldest < ChatterWindow {
			a.abandon("stepper chatter")
			return
		}
		a.candidates = 0

	case EventByte, EventPoll:
		if cycle-a.lastRead < CyclesPerBit {
			a.fastPolls++
			if a.fastPolls > PollingLimit {
				a.abandon("fast polling")
				return
			}
		} else {
			a.fastPolls = 0
		}
		a.lastRead = cycle

		if drv.HalfTrack() {
			a.abandon("half-track")
			return
		}

		// checking a track is expensive so it is done once per track
		if drv.QuarterTrack != a.verified {
			if drv.image != nil && !drv.image.SelfSync(drv.Track()) {
				a.abandon(fmt.Sprintf("track %d is not self-sync", drv.Track()))
				return
			}
			a.verified = drv.QuarterTrack
		}

		if ev == EventPoll || a.promoted {
			return
		}

		a.candidates++
		if a.candidates < CandidateThreshold {
			return
		}

		if drv.Motor != Ready || drv.Writing || drv.image == nil {
			return
		}

		a.promoted = true
	}
}

// the drive has always been synced before Observe() so demotion needs no
// further work
func (a *Accelerated) abandon(reason string) {
	a.promoted = false
	a.fallback = reason
	logger.Logf(logger.Allow, "disk2", "acceleration stopped: %s", reason)
}

// Accelerated implements the Timing interface.
func (a *Accelerated) Accelerated() bool {
	return a.promoted
}

// Reset implements the Timing interface.
func (a *Accelerated) Reset() {
	*a = Accelerated{verified: -1}
}

func (a *Accelerated) String() string {
	if a.fallback != "" {
		return fmt.Sprintf("accelerated (exact after %s)", a.fallback)
	}
	if a.promoted {
		return "accelerated"
	}
	return "accelerated (waiting)"
}
