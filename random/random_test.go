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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher2e/random"
	"github.com/jetsetilly/gopher2e/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) Cycles() uint64 {
	return c.cycles
}

func TestRandom(t *testing.T) {
	ca := &clock{cycles: 1000}
	cb := &clock{cycles: 1000}
	a := random.NewRandom(ca)
	b := random.NewRandom(cb)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
		ca.cycles++
		cb.cycles++
	}

	// filling a slice must also be reproducible
	fa := make([]uint8, 64)
	fb := make([]uint8, 64)
	a.Fill(fa)
	b.Fill(fb)
	for i := range fa {
		test.ExpectEquality(t, fa[i], fb[i])
	}
}

func TestRandomNilClock(t *testing.T) {
	a := random.NewRandom(nil)
	a.ZeroSeed = true
	v := a.Intn(10)
	test.ExpectSuccess(t, v >= 0 && v < 10)
}
