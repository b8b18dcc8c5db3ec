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

package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3  // end-of-text character
	KeySuspend        = 26 // substitute character
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 8
	KeyDelete         = 127
)

// list of ASCII code for characters that can follow KeyEsc
const (
	EscCursor = '['
)

// list of ASCII code for characters that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// Apple II key codes for the arrow keys. Up and down are IIe only.
const (
	AppleLeft  = 0x08
	AppleRight = 0x15
	AppleUp    = 0x0b
	AppleDown  = 0x0a
)

// Translate a chunk of terminal input into the 7 bit key codes the Apple II
// keyboard produces. Cursor escape sequences must not be split across
// chunks.
//
// If upper is true then lower case letters are converted to upper case and
// the delete key produces a backspace, as on the II and II+.
func Translate(p []byte, upper bool) []uint8 {
	keys := make([]uint8, 0, len(p))

	for i := 0; i < len(p); i++ {
		c := p[i]
		switch c {
		case KeyEsc:
			if i+2 < len(p) && p[i+1] == EscCursor {
				var k uint8
				switch p[i+2] {
				case CursorUp:
					k = AppleUp
				case CursorDown:
					k = AppleDown
				case CursorForward:
					k = AppleRight
				case CursorBackward:
					k = AppleLeft
				}
				if k != 0 {
					keys = append(keys, k)
					i += 2
					continue // for loop
				}
			}
			keys = append(keys, KeyEsc)
		case KeyLineFeed:
			keys = append(keys, KeyCarriageReturn)
		case KeyDelete:
			if upper {
				keys = append(keys, KeyBackspace)
			} else {
				keys = append(keys, KeyDelete)
			}
		default:
			if c > 0x7f {
				continue // for loop
			}
			if upper && c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			keys = append(keys, c)
		}
	}

	return keys
}
