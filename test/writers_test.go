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

package test_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher2e/test"
)

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectSuccess(t, w.Compare(""))

	fmt.Fprintf(w, "A=%02x ", 0xaa)
	fmt.Fprintf(w, "X=%02x", 0x05)
	test.ExpectSuccess(t, w.Compare("A=aa X=05"))
	test.ExpectFailure(t, w.Compare("A=aa"))
	test.ExpectEquality(t, w.String(), "A=aa X=05")

	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
