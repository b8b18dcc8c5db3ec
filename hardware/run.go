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

// CyclesPerFrame is the number of CPU cycles in one NTSC frame. 65 cycles per
// line and 262 lines.
const CyclesPerFrame = 17030

// the cycle callback given to the CPU. the disk controller is advanced after
// every CPU cycle
func (m *Machine) cycle() {
	m.cycles++
	m.Disk.Tick()
}

// RunCycles runs the machine until at least n cycles have passed. The number
// of cycles actually run is returned. This can be more than n because an
// instruction always completes. It can be less than n if the machine has
// been halted.
func (m *Machine) RunCycles(n int) int {
	start := m.cycles
	target := start + uint64(n)

	for m.cycles < target && !m.halt.Load() {
		m.CPU.ExecuteInstruction(m.cycle)
	}

	return int(m.cycles - start)
}

// RunFrame runs the machine for one frame. If snapshot history is enabled a
// snapshot is taken at the end of the frame.
func (m *Machine) RunFrame() int {
	n := m.RunCycles(CyclesPerFrame)
	if m.Rewind != nil {
		m.Rewind.append(m.Snapshot())
	}
	return n
}

// Frame returns the number of frames since the last reset.
func (m *Machine) Frame() int {
	return int(m.cycles / CyclesPerFrame)
}
