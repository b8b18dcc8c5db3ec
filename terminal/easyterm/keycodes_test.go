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

package easyterm_test

import (
	"testing"

	"github.com/jetsetilly/gopher2e/terminal/easyterm"
	"github.com/jetsetilly/gopher2e/test"
)

func compare(t *testing.T, got []uint8, expected ...uint8) {
	t.Helper()
	test.DemandEquality(t, len(got), len(expected))
	for i := range got {
		test.ExpectEquality(t, got[i], expected[i], i)
	}
}

func TestTranslate(t *testing.T) {
	compare(t, easyterm.Translate([]byte("run\n"), true), 'R', 'U', 'N', 0x0d)
	compare(t, easyterm.Translate([]byte("run\n"), false), 'r', 'u', 'n', 0x0d)
}

func TestTranslateCursor(t *testing.T) {
	in := []byte{0x1b, '[', 'D', 0x1b, '[', 'C', 0x1b, '[', 'A', 0x1b, '[', 'B'}
	compare(t, easyterm.Translate(in, true), 0x08, 0x15, 0x0b, 0x0a)

	// a lone escape and an unknown sequence
	compare(t, easyterm.Translate([]byte{0x1b}, true), 0x1b)
	compare(t, easyterm.Translate([]byte{0x1b, '[', 'Z'}, true), 0x1b, '[', 'Z')
}

func TestTranslateDelete(t *testing.T) {
	compare(t, easyterm.Translate([]byte{0x7f}, true), 0x08)
	compare(t, easyterm.Translate([]byte{0x7f}, false), 0x7f)

	// bytes outside the 7 bit range are dropped
	compare(t, easyterm.Translate([]byte{0xc3, 0xa9, 'a'}, true), 'A')
}
