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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is stored alongside
// the values so that the error can later be identified by the pattern alone.
//
// Sentinal patterns should be stored as exported const strings, suitably
// named and commented. For example, the diskimage package declares:
//
//	const DiskImageError = "diskimage: %v"
//
// and the caller of an image loader can test for it with the Is() function:
//
//	img, err := diskimage.Load(data, "DSK")
//	if curated.Is(err, diskimage.DiskImageError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. So a machine error wrapping a disk error:
//
//	err = curated.Errorf("machine: %v", err)
//
// will still answer true to curated.Has(err, diskimage.DiskImageError) but
// false to curated.Is().
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Errors that are not curated can be thought of as
// unexpected errors, ie. errors that originate outside of the emulation.
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. A chain is composed of parts separated by the sub-string
// ": " as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan). For example, wrapping "disk2: no drive 3" with the pattern
// "disk2: %v" results in:
//
//	disk2: no drive 3
//
// and not:
//
//	disk2: disk2: no drive 3
package curated
