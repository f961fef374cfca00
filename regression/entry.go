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

package regression

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/database"
	"github.com/jetsetilly/gophernes/digest"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/instance"
)

const digestEntryID = "digest"

const (
	digestFieldMode int = iota
	digestFieldCartridge
	digestFieldNumFrames
	digestFieldDigest
	digestFieldNotes
	numDigestFields
)

// DigestRegression runs a cartridge for a number of frames and compares the
// digest of the output with the recorded digest.
type DigestRegression struct {
	Mode      Mode
	CartLoad  cartridgeloader.Loader
	NumFrames int
	Notes     string

	digest string
}

// NewDigestRegression is the preferred method of initialisation for the
// DigestRegression type.
func NewDigestRegression(mode Mode, cartload cartridgeloader.Loader, numFrames int, notes string) (*DigestRegression, error) {
	if numFrames < 1 {
		return nil, fmt.Errorf("number of frames must be at least one")
	}
	return &DigestRegression{
		Mode:      mode,
		CartLoad:  cartload,
		NumFrames: numFrames,
		Notes:     notes,
	}, nil
}

func deserialiseDigestEntry(fields []string) (database.Entry, error) {
	if len(fields) != numDigestFields {
		return nil, fmt.Errorf("digest entry: wrong number of fields (%d)", len(fields))
	}

	mode, err := ParseMode(fields[digestFieldMode])
	if err != nil {
		return nil, err
	}

	numFrames, err := strconv.Atoi(fields[digestFieldNumFrames])
	if err != nil {
		return nil, fmt.Errorf("digest entry: invalid number of frames (%s)", fields[digestFieldNumFrames])
	}

	return &DigestRegression{
		Mode:      mode,
		CartLoad:  cartridgeloader.NewLoader(fields[digestFieldCartridge]),
		NumFrames: numFrames,
		Notes:     fields[digestFieldNotes],
		digest:    fields[digestFieldDigest],
	}, nil
}

// ID implements the database.Entry interface.
func (reg *DigestRegression) ID() string {
	return digestEntryID
}

func (reg *DigestRegression) String() string {
	s := fmt.Sprintf("[%s] %s frames=%d", reg.Mode, reg.CartLoad.ShortName(), reg.NumFrames)
	if reg.Notes != "" {
		s = fmt.Sprintf("%s [%s]", s, reg.Notes)
	}
	return s
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() ([]string, error) {
	if strings.ContainsAny(reg.CartLoad.Filename, ",\n") {
		return nil, fmt.Errorf("cartridge filename can not contain a comma or a newline")
	}
	if strings.ContainsAny(reg.Notes, ",\n") {
		return nil, fmt.Errorf("notes can not contain a comma or a newline")
	}

	return []string{
		reg.Mode.String(),
		reg.CartLoad.Filename,
		strconv.Itoa(reg.NumFrames),
		reg.digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg *DigestRegression) CleanUp() error {
	return nil
}

// regress implements the Regressor interface.
func (reg *DigestRegression) regress(newRegression bool) (bool, string, error) {
	ins, err := instance.NewInstance(instance.Test, nil)
	if err != nil {
		return false, "", err
	}
	ins.Normalise()

	nes, err := hardware.NewNES(ins, nil)
	if err != nil {
		return false, "", err
	}

	var dig digest.Digest
	switch reg.Mode {
	case ModeVideo:
		v := digest.NewVideo()
		nes.AddFrameSink(v)
		dig = v
	case ModeAudio:
		a := digest.NewAudio()
		nes.SetAudioSink(a)
		dig = a
	}

	if err := nes.AttachCartridge(reg.CartLoad); err != nil {
		return false, "", err
	}

	err = nes.RunForFrameCount(reg.NumFrames, nil)
	if err != nil {
		return false, "", err
	}

	if a, ok := dig.(*digest.Audio); ok {
		if err := a.EndMixing(); err != nil {
			return false, "", err
		}
	}

	if newRegression {
		reg.digest = dig.Hash()
		return true, "", nil
	}

	if dig.Hash() != reg.digest {
		return false, fmt.Sprintf("digest mismatch: %s expected %s", dig.Hash(), reg.digest), nil
	}

	return true, "", nil
}
