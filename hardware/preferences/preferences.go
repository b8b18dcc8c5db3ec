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

package preferences

import (
	"math/rand"
	"strings"
	"time"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/paths"
	"github.com/jetsetilly/gopher2e/prefs"
)

// DefaultSpinUp is the number of cycles it takes for a Disk II motor to
// reach operating speed. The value is the number of cycles in approximately
// 150ms.
const DefaultSpinUp = 150000

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// the machine model to emulate. one of AUTO, II, II+, IIE or
	// IIE-ENHANCED. AUTO means the model is decided by the size of the ROM
	Model prefs.String

	// initialise RAM to an unknown state after reset
	RandomState prefs.Bool

	// use the accelerated disk timing strategy
	Accelerated prefs.Bool

	// newly inserted disks are write protected
	WriteProtect prefs.Bool

	// number of cycles before a disk motor is at speed
	SpinUp prefs.Int

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p, err := newPreferences()
	if err != nil {
		return nil, err
	}

	// setup preferences and load from disk
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.register()
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// NewPreferencesFromFile is like NewPreferences() but uses the named file for
// persistence. The file is not created unless Save() is called.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p, err := newPreferences()
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.register()
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(false)
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}
	return p, nil
}

func newPreferences() (*Preferences, error) {
	p := &Preferences{}

	// initialise random number generator
	p.Reseed(0)

	p.Model.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case "", "AUTO", "II", "II+", "IIE", "IIE-ENHANCED":
			return nil
		}
		return curated.Errorf("preferences: unrecognised model (%v)", v)
	})

	return p, p.setDefaults()
}

func (p *Preferences) setDefaults() error {
	if err := p.Model.Set("AUTO"); err != nil {
		return err
	}
	if err := p.RandomState.Set(false); err != nil {
		return err
	}
	if err := p.Accelerated.Set(true); err != nil {
		return err
	}
	if err := p.WriteProtect.Set(false); err != nil {
		return err
	}
	return p.SpinUp.Set(DefaultSpinUp)
}

func (p *Preferences) register() error {
	if err := p.dsk.Add("hardware.model", &p.Model); err != nil {
		return err
	}
	if err := p.dsk.Add("hardware.randstate", &p.RandomState); err != nil {
		return err
	}
	if err := p.dsk.Add("disk2.accelerated", &p.Accelerated); err != nil {
		return err
	}
	if err := p.dsk.Add("disk2.writeprotect", &p.WriteProtect); err != nil {
		return err
	}
	return p.dsk.Add("disk2.spinup", &p.SpinUp)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.setDefaults()
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
