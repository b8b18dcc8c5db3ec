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

// Package thomharte contains 6502 and 65C02 single-step tests as created and
// maintained by Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included as part of the Gopher2e
// repository. Add the JSON files for the instructions you want to test from
// the 6502/v1 and rockwell65c02/v1 directories on Github to the equivalent
// directories in this package. The test is skipped if a directory is missing.
package thomharte
