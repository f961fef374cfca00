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

// Package instance holds the parts of an emulation that are not the NES
// itself but which can differ between two NES values running in the same
// program. A regression test running alongside the main emulation has its own
// random number source and may have its own preferences.
package instance

import (
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/random"
)

// Label says what an instance is being used for.
type Label string

// The main emulation has the empty label.
const (
	Main        Label = ""
	Performance Label = "performance"
	Test        Label = "test"
)

// Instance is shared by every component of one NES.
type Instance struct {
	Label  Label
	Random *random.Random

	// may be shared with other instances
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
// If prefs is nil then the preferences are read from the preferences file.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	if prefs == nil {
		p, err := preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
		prefs = p
	}

	return &Instance{
		Label:  label,
		Random: random.NewRandom(nil),
		Prefs:  prefs,
	}, nil
}

// Normalise puts the instance into a state that is the same on every run.
// Regression tests are run with a normalised instance.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Instances other
// than the main emulation never log. A nil instance counts as the main
// emulation.
func (ins *Instance) AllowLogging() bool {
	return ins == nil || ins.Label == Main
}
