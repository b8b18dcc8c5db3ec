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

// Package functional_test runs the 6502 and 65C02 functional tests as defined
// by Klaus Dormann. https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The binaries are not part of the repository. Assemble them with the default
// options (load address of zero and the program origin at 0x0400) and place
// them in the testdata directory of this package. The test is skipped for any
// binary that cannot be found.
//
// The success address of each binary depends on the version of the source
// and must match the values in functional_test.go.
package functional_test
