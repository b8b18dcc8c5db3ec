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

package hardware

// MaxRewindSteps is the maximum number of snapshots to store before the
// earliest snapshots are forgotten.
const MaxRewindSteps = 100

// Rewind is a history of snapshots taken at the end of every frame.
type Rewind struct {
	m        *Machine
	steps    []*State
	position int
}

// EnableRewind starts the recording of snapshot history. The history is
// reset every time the machine is reset.
func (m *Machine) EnableRewind() {
	m.Rewind = &Rewind{
		m:     m,
		steps: make([]*State, 0, MaxRewindSteps),
	}
	m.Rewind.Reset()
}

// Reset rewind system to zero, taking a snapshot of the current state.
func (r *Rewind) Reset() {
	r.steps = r.steps[:0]
	r.position = 0
	r.append(r.m.Snapshot())
}

func (r *Rewind) append(s *State) {
	// appending after a rewind forgets the future
	r.steps = append(r.steps[:r.position], s)

	// maintain maximum length
	if len(r.steps) > MaxRewindSteps {
		r.steps = r.steps[1:]
	}

	r.position = len(r.steps)
}

// State returns the number of snapshots and the current position.
func (r *Rewind) State() (int, int) {
	return len(r.steps), r.position - 1
}

// SetPosition plumbs the snapshot at the position into the machine.
func (r *Rewind) SetPosition(pos int) {
	if pos >= len(r.steps) {
		pos = len(r.steps) - 1
	}
	if pos < 0 {
		pos = 0
	}

	r.m.Plumb(r.steps[pos])
	r.position = pos + 1
}

// GotoFrame searches the history for the frame number. Goes to nearest frame
// if frame number is not present. Returns true if exact frame number was found
// and false if not.
func (r *Rewind) GotoFrame(frame int) bool {
	// binary search for frame number
	b := 0
	t := len(r.steps) - 1
	for b <= t {
		m := (t + b) / 2

		f := r.steps[m].Frame()
		if f == frame {
			r.SetPosition(m)
			return true
		}

		if f < frame {
			b = m + 1
		} else {
			t = m - 1
		}
	}

	r.SetPosition(b)
	return false
}
