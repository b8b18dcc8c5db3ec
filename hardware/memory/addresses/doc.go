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

// Package addresses contains the canonical names and addresses of the soft
// switches in the Apple II I/O page. The memory package uses the constants to
// dispatch accesses and the monitor uses the names when disassembling.
//
// Names follow the Apple IIe Technical Reference Manual. Some addresses have
// different names for reading and writing because the effect of the access
// differs.
package addresses
