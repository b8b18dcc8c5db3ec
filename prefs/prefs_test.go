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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/prefs"
	"github.com/jetsetilly/gopher2e/test"
)

const tempFile = "gopher2e_prefs_test"

func getTmpPrefFile(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), tempFile)
}

func delTmpPrefFile(t *testing.T, fn string) {
	t.Helper()

	if err := os.Remove(fn); err != nil {
		// not worrying about path errors; these are returned if
		// file doesn't exist
		if _, ok := err.(*os.PathError); !ok {
			t.Errorf("error removing tmp pref file: %v", err)
		}
	}
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectSuccess(t, err)
	err = dsk.Add("testB", &w)
	test.ExpectSuccess(t, err)
	err = dsk.Add("testC", &x)
	test.ExpectSuccess(t, err)

	err = v.Set(true)
	test.ExpectSuccess(t, err)
	err = w.Set("foo")
	test.ExpectSuccess(t, err)
	err = x.Set("true")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
		return
	}

	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.String
	err = dsk.Add("foo", &v)
	test.ExpectSuccess(t, err)

	err = v.Set("bar")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
	}

	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Int
	var w prefs.Int
	err = dsk.Add("number", &v)
	test.ExpectSuccess(t, err)
	err = dsk.Add("numberB", &w)
	test.ExpectSuccess(t, err)

	err = v.Set(10)
	test.ExpectSuccess(t, err)

	// test string conversion to int
	err = w.Set("99")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
	}

	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	err = v.Set("---")
	test.ExpectFailure(t, err)

	err = v.Set(1.0)
	test.ExpectFailure(t, err)
}

func TestGeneric(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var w, h int

	v := prefs.NewGeneric(
		func(v prefs.Value) error {
			_, err := fmt.Sscanf(v.(string), "%d,%d", &w, &h)
			if err != nil {
				return err
			}
			return nil
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	err = dsk.Add("generic", v)
	test.ExpectSuccess(t, err)

	// change values
	w = 1
	h = 2

	// save to disk
	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
	}

	cmpTmpFile(t, fn, "generic :: 1,2\n")

	// reset values
	w = 0
	h = 0

	// reload them from disk
	err = dsk.Load(false)
	if err != nil {
		t.Errorf("error saving disk: %v", err)
	}

	// check that the values have been restoed
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var v prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectSuccess(t, err)

	err = v.Set(true)
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
		return
	}

	// start a new disk instance using the same file. (we haven't deleted it yet)
	dsk, err = prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var s prefs.String
	err = dsk.Add("foo", &s)
	test.ExpectSuccess(t, err)

	err = s.Set("bar")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	if err != nil {
		t.Errorf("error saving disk: %v", err)
		return
	}

	// compate file. the file should contain contents set by both disk
	// instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Errorf("error preparing disk: %v", err)
		return
	}

	var s prefs.String
	err = dsk.Add("test", &s)
	test.ExpectSuccess(t, err)
	err = s.Set("123456789")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	err = s.Set("abcdefghi")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.String(), "abc")
}

func TestLoadHandWritten(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	// prefs file written by hand. includes a key with no entry in this Disk
	// and a line that isn't a key/value pair
	err := os.WriteFile(fn, []byte(fmt.Sprintf("%s\ncrt.scanlines :: false\nnonsense\ndisk2.accelerated :: true\nhardware.model :: IIE\n", prefs.WarningBoilerPlate)), 0o600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var accel prefs.Bool
	var model prefs.String
	test.ExpectSuccess(t, dsk.Add("disk2.accelerated", &accel))
	test.ExpectSuccess(t, dsk.Add("hardware.model", &model))

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, accel.Get().(bool), true)
	test.ExpectEquality(t, model.String(), "IIE")

	// saving keeps the foreign key and drops the malformed line
	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "crt.scanlines :: false\ndisk2.accelerated :: true\nhardware.model :: IIE\n")

	// reset restores default values but doesn't touch the file
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, accel.Get().(bool), false)
	test.ExpectEquality(t, model.String(), "")
}

func TestLoadMissingFile(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("disk2.spinup", &v))
	test.ExpectFailure(t, dsk.Add("disk2.spinup", &v))
	test.ExpectFailure(t, dsk.Add("bad key", &v))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// file is created when saveOnFail is true
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "disk2.spinup :: 0\n")
}

func TestCommandLineOverride(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	prefs.PushCommandLineStack("disk2.writeprotect::true")
	defer prefs.PopCommandLineStack()

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var spinUp prefs.Int
	test.ExpectSuccess(t, dsk.Add("disk2.writeprotect", &v))
	test.ExpectSuccess(t, dsk.Add("disk2.spinup", &spinUp))
	test.ExpectEquality(t, v.Get().(bool), true)

	// the file value does not replace the command line value
	err = os.WriteFile(fn, []byte("disk2.writeprotect :: false\ndisk2.spinup :: 100\n"), 0o600)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, spinUp.Get().(int), 100)

	// and the command line value is never saved
	test.ExpectSuccess(t, spinUp.Set(200))
	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "disk2.spinup :: 200\ndisk2.writeprotect :: false\n")
}
