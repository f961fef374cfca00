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

package hardware

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/state"
)

// Sentinal error patterns returned by SaveState() and LoadState().
const (
	NoCartridge             = "nes: no cartridge attached"
	UnsupportedStateVersion = "nes: unsupported state version (%d)"
	TrailingState           = "nes: state: %d bytes of unused data"
)

// version of the save state format.
const stateVersion = 1

// SaveState returns the entire state of the console. The state can be
// restored with LoadState() for as long as the same cartridge is attached.
func (nes *NES) SaveState() ([]byte, error) {
	m := nes.Cart.Mapper()
	if m == nil {
		return nil, curated.Errorf(NoCartridge)
	}

	enc := state.NewEncoder()
	enc.Section("GNES")
	enc.Uint8(stateVersion)

	nes.CPU.SaveState(enc)
	nes.PPU.SaveState(enc)
	nes.Mem.SaveState(enc)
	nes.Input.SaveState(enc)
	nes.APU.SaveState(enc)

	enc.Section("BUS_")
	enc.Int(int(nes.readiness))
	enc.Uint8(nes.oam.page)
	enc.Int(nes.oam.wait)
	enc.Int(nes.oam.count)
	enc.Uint8(nes.oam.data)
	enc.Bool(nes.oam.latched)
	enc.Uint16(nes.dmc.address)
	enc.Int(nes.dmc.wait)
	enc.Int(nes.budget)
	enc.Uint64(nes.cycles)

	m.SaveState(enc)

	return enc.Data(), nil
}

// LoadState restores the console state from data created by SaveState(). If
// the data can not be decoded the console is left as it was.
func (nes *NES) LoadState(data []byte) error {
	if nes.Cart.Mapper() == nil {
		return curated.Errorf(NoCartridge)
	}

	undo, err := nes.SaveState()
	if err != nil {
		return err
	}
	executed, frameDone := nes.executed, nes.frameDone
	last := nes.CPU.LastResult

	if err := nes.restore(data); err != nil {
		if rerr := nes.restore(undo); rerr != nil {
			panic(rerr)
		}
		nes.executed, nes.frameDone = executed, frameDone
		nes.CPU.LastResult = last
		return err
	}

	return nil
}

// restore decodes data into the console. Components are overwritten as they
// are decoded so a failure leaves the console in an inconsistent state.
func (nes *NES) restore(data []byte) error {
	dec := state.NewDecoder(data)
	dec.Section("GNES")
	if v := dec.Uint8(); dec.Err() == nil && v != stateVersion {
		return curated.Errorf(UnsupportedStateVersion, v)
	}

	nes.CPU.LoadState(dec)
	nes.PPU.LoadState(dec)
	nes.Mem.LoadState(dec)
	nes.Input.LoadState(dec)
	nes.APU.LoadState(dec)

	dec.Section("BUS_")
	readiness := Readiness(dec.Int())
	if readiness < Running || readiness > DmcStall {
		dec.Invalid("readiness", int(readiness))
	}
	nes.oam.page = dec.Uint8()
	nes.oam.wait = dec.Int()
	nes.oam.count = dec.Int()
	nes.oam.data = dec.Uint8()
	nes.oam.latched = dec.Bool()
	nes.dmc.address = dec.Uint16()
	nes.dmc.wait = dec.Int()
	nes.budget = dec.Int()
	nes.cycles = dec.Uint64()

	nes.Cart.Mapper().LoadState(dec)

	if err := dec.Err(); err != nil {
		return err
	}
	if dec.Remaining() > 0 {
		return curated.Errorf(TrailingState, dec.Remaining())
	}

	nes.setReadiness(readiness)
	nes.executed = false
	nes.frameDone = false

	return nil
}
