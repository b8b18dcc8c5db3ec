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

// Package hardware is the base package for the Apple II emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// the CPU, the memory map and the Disk II controller. From here, the
// emulation can either be run for a number of cycles or a frame at a time, or
// it can be stepped one instruction at a time.
//
// After every CPU cycle the machine clock is advanced and the Disk II
// controller is given the opportunity to move the disk under the head.
//
// The state of the machine can be copied with Snapshot() and restored with
// Plumb(). Disk images are not part of the state.
package hardware
