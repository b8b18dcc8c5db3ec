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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// commandLineGroup holds the preferences given on one command line. entries
// are removed as they are claimed by a Disk.
type commandLineGroup map[string]Value

// unclaimed returns the entries of the group that no Disk asked for, in the
// same "key::value; key::value" form accepted by PushCommandLineStack().
func (g commandLineGroup) unclaimed() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprintf("%s::%v", k, g[k])
	}
	return strings.Join(s, "; ")
}

var commandLine struct {
	crit  sync.Mutex
	stack []commandLineGroup
}

// SizeCommandLineStack returns the number of groups on the command line stack.
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a preferences string of the form
// "key::value; key::value" and pushes it as a new group. Malformed entries
// are ignored.
func PushCommandLineStack(prefs string) {
	g := make(commandLineGroup)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		g[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, g)
}

// PopCommandLineStack removes the most recent group and returns the entries
// that were never claimed by GetCommandLinePref().
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}
	g := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]
	return g.unclaimed()
}

// GetCommandLinePref claims the value for key from the most recent group.
// A value can only be claimed once.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return false, nil
	}
	g := commandLine.stack[n-1]
	v, ok := g[key]
	if ok {
		delete(g, key)
	}
	return ok, v
}
