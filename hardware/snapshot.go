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

import (
	"github.com/jetsetilly/gopher2e/hardware/cpu"
	"github.com/jetsetilly/gopher2e/hardware/disk2"
	"github.com/jetsetilly/gopher2e/hardware/memory"
)

// State stores the Machine sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function
//
// Note that disk images are not part of the snapshot. The drive state refers
// to the inserted images by their identity.
type State struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Disk   *disk2.State
	Cycles uint64
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	d := *s.Disk
	return &State{
		CPU:    s.CPU.Snapshot(),
		Mem:    s.Mem.Snapshot(),
		Disk:   &d,
		Cycles: s.Cycles,
	}
}

// Frame returns the frame number of the state.
func (s *State) Frame() int {
	return int(s.Cycles / CyclesPerFrame)
}

// Snapshot the state of the Machine sub-systems.
func (m *Machine) Snapshot() *State {
	return &State{
		CPU:    m.CPU.Snapshot(),
		Mem:    m.Mem.Snapshot(),
		Disk:   m.Disk.Snapshot(),
		Cycles: m.cycles,
	}
}

// Plumb a previously snapshotted state into the machine.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored in our state
	s := state.Snapshot()

	m.cycles = s.Cycles
	m.CPU = s.CPU
	m.Mem = s.Mem
	m.CPU.Plumb(m.Mem)
	m.Mem.Plumb(m, m.speaker)
	m.Disk.PlumbState(s.Disk)
}
