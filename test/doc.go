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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions report a fatal error and stop the test immediately.
// Demand*() should be used when the value being tested is needed by later
// parts of the test. For example, the length of a decoded disk track must be
// correct before the bytes of the track are compared.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. Currently supported types are bool and error. It is
// worth describing how nil is handled because it is not obvious: nil is
// considered a success. This is because of how errors usually work (nil to
// indicate no error).
//
// All functions take an optional list of tags. The tags are printed as part of
// any failure message and are useful for identifying which iteration of a
// loop failed. For example:
//
//	for op := 0; op < 256; op++ {
//		test.ExpectEquality(t, cycles, expected, fmt.Sprintf("%02x", op))
//	}
//
// CompareWriter captures output written through an io.Writer for comparison
// with an expected string.
package test
