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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware/disk2/diskimage"
	"github.com/jetsetilly/gopher2e/logger"
)

// LoaderError is the pattern used for all errors originating in the package.
const LoaderError = "romloader: %v"

// Kind of data the Loader is dealing with.
type Kind int

// List of valid Kind values.
const (
	KindROM Kind = iota
	KindDisk
)

func (k Kind) String() string {
	switch k {
	case KindROM:
		return "ROM"
	case KindDisk:
		return "disk"
	}
	return "unknown"
}

// FileExtensions is the list of disk image file extensions recognised by the
// package. Any other extension is treated as a ROM.
var FileExtensions = [...]string{".DSK", ".DO", ".PO", ".NIB"}

// Loader is used to specify a ROM or disk image.
type Loader struct {
	// filename or URL of the data
	Filename string

	Kind Kind

	// expected hash of the data. an empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The Kind is decided by the file extension.
func NewLoader(filename string) Loader {
	ld := Loader{
		Filename: filename,
		Kind:     KindROM,
	}

	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range FileExtensions {
		if ext == e {
			ld.Kind = KindDisk
			break // for loop
		}
	}

	return ld
}

// ShortName returns the filename without path and without extension.
func (ld Loader) ShortName() string {
	s := path.Base(filepath.ToSlash(ld.Filename))
	return strings.TrimSuffix(s, path.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

func (ld Loader) scheme() string {
	u, err := url.Parse(ld.Filename)
	if err != nil {
		return "file"
	}

	// a single letter scheme is a windows drive letter
	if len(u.Scheme) <= 1 {
		return "file"
	}
	return u.Scheme
}

// Load the data. Filenames with a URL scheme of HTTP or HTTPS are fetched
// from the network. Everything else is a local file.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	var data []byte
	var err error

	switch scheme := ld.scheme(); scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, fmt.Sprintf("%s: %s", ld.Filename, resp.Status))
		}
		data, err = io.ReadAll(resp.Body)
	case "file":
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
	default:
		return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if err != nil {
		return curated.Errorf(LoaderError, err)
	}
	if len(data) == 0 {
		return curated.Errorf(LoaderError, fmt.Sprintf("%s is empty", ld.Filename))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(LoaderError, "unexpected hash value")
	}
	ld.Hash = hash
	ld.Data = data

	logger.Logf(logger.Allow, "romloader", "loaded %s %s (%d bytes)", ld.Kind, ld.ShortName(), len(data))

	return nil
}

// Disk returns the loaded data as a disk image. Local files are loaded by
// the diskimage package so that file permissions decide write protection.
// Images fetched from the network are always write protected.
func (ld *Loader) Disk() (*diskimage.Image, error) {
	if ld.Kind != KindDisk {
		return nil, curated.Errorf(LoaderError, fmt.Sprintf("%s is not a disk image", ld.ShortName()))
	}

	if ld.scheme() == "file" {
		img, err := diskimage.Load(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return nil, curated.Errorf(LoaderError, err)
		}
		return img, nil
	}

	if err := ld.Load(); err != nil {
		return nil, err
	}

	format, _ := diskimage.FormatFromFilename(ld.Filename)
	img, err := diskimage.NewImage(ld.Data, format, ld.ShortName())
	if err != nil {
		return nil, curated.Errorf(LoaderError, err)
	}
	img.WriteProtected = true

	return img, nil
}
