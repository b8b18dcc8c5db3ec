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

package logger

// Permission is implemented by anything that makes log entries and wants to
// be able to silence itself. The CPU implements it so that the JAM
// instruction can be run many times by test harnesses without filling the
// log.
type Permission interface {
	AllowLogging() bool
}

type always bool

func (a always) AllowLogging() bool {
	return bool(a)
}

// Allow is the permission to use when an entry should always be made.
var Allow Permission = always(true)

// Deny is the permission to use when an entry should never be made.
var Deny Permission = always(false)
