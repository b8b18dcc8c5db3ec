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

// Package disk2 emulates the Disk II interface card and two attached drives.
//
// The controller is a memory.Peripheral and is normally placed in slot 6,
// where its sixteen registers appear at $C0E0 to $C0EF and the boot ROM at
// $C600.
//
// The registers control the four stepper magnets, the drive motor, the
// selection of the drive and the Q6/Q7 mode lines. The even numbered
// registers return the data latch when read.
//
// The disk passes under the head at one byte every 32 CPU cycles, a bit every
// four cycles. A complete byte is returned by the data register once, with
// bit 7 set. Further reads before the next byte is complete return the bits
// that have been shifted in so far.
//
// How the disk is moved under the head is decided by a Timing strategy. The
// Exact strategy counts every cycle and the Accelerated strategy calculates
// the position of the disk only when the controller is accessed. Both
// strategies produce the same data at the same cycles. The strategy is chosen
// with the disk2.accelerated preference.
package disk2
