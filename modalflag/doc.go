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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes (and sub-modes) each with its own set of flags.
//
// Arguments are first given with NewArgs() and then parsed with Parse():
//
//	md = modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MONITOR", "NIBBLE", "VERSION")
//	_, _ = md.Parse()
//
// After Parse(), Mode() returns the sub-mode that was selected. If the first
// non-flag argument isn't one of the sub-modes then the first sub-mode in the
// list is chosen. All sub-mode comparisons are case insensitive.
//
// Each mode is then handled by calling NewMode(), adding the flags for the
// mode and calling Parse() again:
//
//	md.NewMode()
//	wav := md.AddString("wav", "", "record speaker to WAV file")
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// Non-flag arguments are returned by RemainingArgs() and GetArg().
//
// Help is handled automatically by Parse() when the -help or -h flag is seen.
// The help message lists the flags for the mode and any sub-modes.
package modalflag
