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

// Package prefs facilitates the storage of preferential values in the
// Gopher2e system. It is intended to be used by other packages to store
// values that the user can change and that should persist between sessions.
//
// A Disk instance is created with NewDisk() and values registered with Add().
// Values are of type Bool, String, Int or Generic.
//
//	var accelerated prefs.Bool
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("disk2.accelerated", &accelerated)
//	dsk.Load(true)
//
// The file format is one key/value pair per line, separated by " :: ".
// Several Disk instances can share the same file.
//
// Preference values can also be given on the command line with the
// PushCommandLineStack() function. A value given in that way takes effect
// when the key is added to a Disk instance.
package prefs
