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

//go:build !release

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2e/paths"
	"github.com/jetsetilly/gopher2e/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher2e/foo/bar/baz")

	// the sub-path should have been created
	_, err = os.Stat(".gopher2e/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher2e/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher2e")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("speaker", "/tmp/disks/DOS 3.3.dsk")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "speaker_DOS 3.3_"))

	fn = paths.UniqueFilename("speaker", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "speaker_"))
	test.ExpectEquality(t, len(fn), len("speaker_YYYYMMDD_HHMMSS"))
}
