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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher2e/prefs"
	"github.com/jetsetilly/gopher2e/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("disk2.accelerated::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "disk2.accelerated::false")

	// whitespace around keys and values is removed
	prefs.PushCommandLineStack("   hardware.model:: IIE ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.model::IIE")

	// unclaimed entries are returned in key order
	prefs.PushCommandLineStack("hardware.model::IIE; disk2.spinup::1000")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "disk2.spinup::1000; hardware.model::IIE")

	// malformed entries are dropped
	prefs.PushCommandLineStack("hardware.model")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("a::b::c;disk2.spinup::1000")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "disk2.spinup::1000")

	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineClaim(t *testing.T) {
	prefs.PushCommandLineStack("hardware.model::IIE;disk2_spinup")

	ok, _ := prefs.GetCommandLinePref("disk2_spinup")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("hardware.model")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("IIE"))

	// a value can only be claimed once
	ok, _ = prefs.GetCommandLinePref("hardware.model")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("hardware.model::II")
	prefs.PushCommandLineStack("hardware.model::IIE")

	// only the most recent group is visible
	ok, v := prefs.GetCommandLinePref("hardware.model")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("IIE"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// the first group is untouched
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.model::II")
	ok, _ = prefs.GetCommandLinePref("hardware.model")
	test.ExpectFailure(t, ok)
}
