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

// Step the machine one CPU instruction and returns the number of cycles used.
// The halt flag is ignored. The optional cycleCallback is called after every
// cycle, after the disk controller has been advanced.
func (m *Machine) Step(cycleCallback func()) int {
	if cycleCallback == nil {
		return m.CPU.ExecuteInstruction(m.cycle)
	}

	return m.CPU.ExecuteInstruction(func() {
		m.cycle()
		cycleCallback()
	})
}

// StepUntil steps the machine until the PC is at the address or the cycle
// budget has been used. Returns true if the address was reached.
func (m *Machine) StepUntil(address uint16, budget int) bool {
	start := m.cycles
	for m.cycles-start < uint64(budget) {
		if m.CPU.PC.Address() == address {
			return true
		}
		if m.halt.Load() {
			return false
		}
		m.Step(nil)
	}
	return m.CPU.PC.Address() == address
}
