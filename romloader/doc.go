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

// Package romloader loads ROM and disk image files. Files can be local or be
// fetched with HTTP.
//
// The type of the file is decided by the file extension. The extensions in
// FileExtensions indicate a disk image. Everything else is a ROM file.
//
//	ld := romloader.NewLoader("dos33.dsk")
//	img, err := ld.Disk()
//
// A SHA1 hash of the loaded data is stored in the Hash field. If the Hash
// field is set before calling Load() then the data must match.
package romloader
