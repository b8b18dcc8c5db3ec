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
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher2e/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in the preferences file.
const KeySep = " :: "

// Sentinal errors.
const (
	NoPrefsFile  = "prefs: no prefs file (%v)"
	InvalidKey   = "prefs: invalid key (%s)"
	DiskError    = "prefs: %v"
	DuplicateKey = "prefs: duplicate key (%s)"
)

// Disk represents preference values as stored on disk. Several instances of
// Disk can use the same file. Values that belong to one instance are
// preserved when another instance saves.
type Disk struct {
	path    string
	entries map[string]pref

	// keys that were set from the command line. these are neither loaded
	// nor saved
	commandLine map[string]bool
}

func (dsk Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:        path,
		entries:     make(map[string]pref),
		commandLine: make(map[string]bool),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from disk. If the key
// has been specified on the command line (see PushCommandLineStack()) then the
// value is set immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if len(key) == 0 || strings.ContainsAny(key, " \t\n;:") {
		return curated.Errorf(InvalidKey, key)
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
		dsk.commandLine[key] = true
	}

	return nil
}

// Reset all entries to their default values.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// readFile returns every key/value pair in the prefs file. Lines that aren't
// key/value pairs are ignored.
func (dsk *Disk) readFile() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanLines)

	for scanner.Scan() {
		l := scanner.Text()
		if l == WarningBoilerPlate {
			continue
		}

		kv := strings.SplitN(l, KeySep, 2)
		if len(kv) != 2 {
			continue
		}

		data[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return data, nil
}

// Save current preference values to disk. Entries in the file that do not
// belong to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.readFile()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		if !dsk.commandLine[k] {
			data[k] = p.String()
		}
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the prefs file
// does not exist then the current values are saved and a nil error returned.
func (dsk *Disk) Load(saveOnFail bool) error {
	data, err := dsk.readFile()
	if err != nil {
		if saveOnFail && curated.Is(err, NoPrefsFile) {
			return dsk.Save()
		}
		return err
	}

	for k, v := range data {
		if dsk.commandLine[k] {
			continue // for loop
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}
