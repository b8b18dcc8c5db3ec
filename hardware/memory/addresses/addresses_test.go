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

package addresses_test

import (
	"testing"

	"github.com/jetsetilly/gopher2e/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2e/test"
)

func TestSymbols(t *testing.T) {
	test.ExpectEquality(t, addresses.Symbol(0xc000, true), "KBD")
	test.ExpectEquality(t, addresses.Symbol(0xc000, false), "CLR80STORE")
	test.ExpectEquality(t, addresses.Symbol(0xc010, true), "KBDSTRB")
	test.ExpectEquality(t, addresses.Symbol(0xc010, false), "KBDSTRB")
	test.ExpectEquality(t, addresses.Symbol(0xc055, true), "HISCR")
	test.ExpectEquality(t, addresses.Symbol(0xc08b, true), "RDBNK1WR")
	test.ExpectEquality(t, addresses.Symbol(0xc083, false), "RDBNK2WR")
	test.ExpectEquality(t, addresses.Symbol(0xc0e0, true), "")
	test.ExpectEquality(t, addresses.Symbol(0x0000, true), "")
	test.ExpectEquality(t, addresses.Symbol(0xd055, true), "")
}
