// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences contains the user preferences for the hardware
// emulation.
package preferences

import (
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/prefs"
)

// Preferences defines the hardware preferences.
type Preferences struct {
	dsk *prefs.Disk

	// randomise the contents of internal RAM on power-on
	RandomState prefs.Bool

	// limit the number of sprites rendered on a scanline to eight
	SpriteLimit prefs.Bool

	// skip the first dot of the pre-render scanline on odd frames when
	// rendering is enabled
	OddFrameSkip prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesFromFile is like NewPreferences() but the preferences file is
// specified rather than found with the paths package.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for key, v := range map[string]*prefs.Bool{
		"hardware.randomstate":  &p.RandomState,
		"hardware.spritelimit":  &p.SpriteLimit,
		"hardware.oddframeskip": &p.OddFrameSkip,
	} {
		if err := dsk.Add(key, v); err != nil {
			return nil, err
		}
	}

	if err := dsk.Load(); err != nil {
		return nil, err
	}
	p.dsk = dsk

	return p, nil
}

// SetDefaults sets every preference to the value that most closely matches a
// real console.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.SpriteLimit.Set(true)
	p.OddFrameSkip.Set(true)
}

// Load replaces the current values with those in the preferences file.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save the current values to the preferences file.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
