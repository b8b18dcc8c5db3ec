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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/gopher2e/statsview"
	"github.com/jetsetilly/gopher2e/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectEquality(t, statsview.Available(), false)

	tw := &test.CompareWriter{}
	statsview.Launch(tw)
	test.ExpectSuccess(t, tw.Compare("stats server not available: build with the statsview tag\n"))
}
