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

package test

import "bytes"

// CompareWriter is an io.Writer that keeps everything written to it, so that
// the output of a monitor command or a logger echo can be checked against an
// expected string.
type CompareWriter struct {
	buf bytes.Buffer
}

func (w *CompareWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Clear forgets everything written so far.
func (w *CompareWriter) Clear() {
	w.buf.Reset()
}

// Compare returns true if the output written since the last Clear() is
// exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return w.buf.String() == s
}

func (w *CompareWriter) String() string {
	return w.buf.String()
}
