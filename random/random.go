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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of emulated time. Numbers returned by Random are a
// function of the clock and the seed.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation. Two emulations with the same seed and the same history will
// produce the same random numbers.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for test instances where random numbers must be predictable
	ZeroSeed bool

	// number of values returned since the clock last changed. ensures that
	// repeated calls in the same cycle do not return the same value
	lastCycle uint64
	sequence  int64
}

// NewRandom is the preferred method of initialisation for the Random type. A
// nil clock is allowed and is equivalent to a clock that never advances.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	var cycle uint64
	if rnd.clock != nil {
		cycle = rnd.clock.Cycles()
	}

	if cycle != rnd.lastCycle {
		rnd.lastCycle = cycle
		rnd.sequence = 0
	}
	rnd.sequence++

	seed := int64(cycle)*7919 + rnd.sequence
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(seed))
	}
	return rand.New(rand.NewSource(baseSeed + seed))
}

// Intn returns a number in the range [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Uint8 returns a random byte.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rand().Intn(256))
}

// Fill the slice with random bytes.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
}
