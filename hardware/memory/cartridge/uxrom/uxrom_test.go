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

package uxrom_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/uxrom"
	"github.com/jetsetilly/gophernes/test"
)

// the first byte of every 16k bank is the bank number.
func newImage(banks int) *mapper.Image {
	img := &mapper.Image{
		PRGROM: make([]uint8, banks*mapper.Bank16k),
		CHR:    make([]uint8, 0x2000),
		CHRRAM: true,
	}
	for b := 0; b < banks; b++ {
		img.PRGROM[b*mapper.Bank16k] = uint8(b)
	}
	return img
}

func TestBankSwitching(t *testing.T) {
	cart := uxrom.NewUxROM(newImage(8))

	read := func(addr uint16) uint8 {
		t.Helper()
		v, ok := cart.CPURead(addr)
		test.ExpectSuccess(t, ok)
		return v
	}

	test.ExpectEquality(t, read(0x8000), uint8(0))
	test.ExpectEquality(t, read(0xc000), uint8(7))

	// the bank is taken from the low nibble of the written value
	for _, b := range []uint8{3, 5, 0xf2} {
		test.ExpectSuccess(t, cart.CPUWrite(0x8123, b))
		test.ExpectEquality(t, read(0x8000), b&0x0f)
		test.ExpectEquality(t, read(0xc000), uint8(7))
	}

	// bank numbers beyond the size of the ROM wrap
	cart.CPUWrite(0xffff, 0x0b)
	test.ExpectEquality(t, read(0x8000), uint8(3))

	cart.Reset()
	test.ExpectEquality(t, read(0x8000), uint8(0))
}
