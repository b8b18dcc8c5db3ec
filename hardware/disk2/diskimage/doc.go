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

// Package diskimage converts disk containers into the nibbles that pass under
// the head of a Disk II drive.
//
// DSK (and DO) files are in DOS 3.3 sector order and PO files are in ProDOS
// sector order. Both are converted into 35 tracks of 6656 bytes, with 16
// sectors per track. Address fields are encoded with the 4-and-4 scheme and
// data fields with the 6-and-2 scheme. NIB files are already in nibble form
// and are used verbatim.
//
// An image can be saved in the NIB form with Save() and the sector data can
// be recovered with Sectors().
package diskimage
