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

package monitor

import (
	"github.com/jetsetilly/gopher2e/hardware"
)

// KeyQueue holds keys waiting to be fed to the keyboard latch. A key is only
// fed when the program has cleared the strobe of the previous key.
type KeyQueue struct {
	keys []uint8
}

// Push adds the text to the queue. Newlines become carriage returns and
// lower case letters are converted to upper case if upper is true.
func (q *KeyQueue) Push(text string, upper bool) {
	for _, c := range []byte(text) {
		switch {
		case c == '\n':
			c = '\r'
		case upper && c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c > 0x7f:
			continue // for loop
		}
		q.keys = append(q.keys, c)
	}
}

// Len returns the number of keys waiting.
func (q *KeyQueue) Len() int {
	return len(q.keys)
}

// Feed the next key to the machine if the keyboard strobe is clear. Returns
// true if a key was fed.
func (q *KeyQueue) Feed(m *hardware.Machine) bool {
	if len(q.keys) == 0 {
		return false
	}
	if m.Peek(0xc000)&0x80 == 0x80 {
		return false
	}
	m.KeyPress(q.keys[0])
	q.keys = q.keys[1:]
	return true
}
