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

package cnrom_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/cnrom"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/state"
	"github.com/jetsetilly/gophernes/test"
)

func TestCHRBankSwitching(t *testing.T) {
	img := &mapper.Image{
		PRGROM: make([]uint8, 0x8000),
		CHR:    make([]uint8, 4*mapper.Bank8k),
	}
	for b := 0; b < 4; b++ {
		img.CHR[b*mapper.Bank8k+0x1fff] = uint8(b)
	}

	cart := cnrom.NewCNROM(img)

	for _, b := range []uint8{1, 2, 3, 0x06} {
		test.ExpectSuccess(t, cart.CPUWrite(0x8000, b))
		v, ok := cart.PPURead(0x1fff)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, v, b&0x03)
	}

	// save and restore bank selection
	enc := state.NewEncoder()
	cart.SaveState(enc)
	cart.CPUWrite(0x8000, 0)

	dec := state.NewDecoder(enc.Data())
	cart.LoadState(dec)
	test.DemandSuccess(t, dec.Err())
	v, _ := cart.PPURead(0x1fff)
	test.ExpectEquality(t, v, uint8(2))
}
