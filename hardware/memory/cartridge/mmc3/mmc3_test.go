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

package mmc3_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mmc3"
	"github.com/jetsetilly/gophernes/hardware/state"
	"github.com/jetsetilly/gophernes/test"
)

// 64k PRG-ROM and 16k CHR-ROM. the first byte of every 8k PRG bank and of
// every 1k CHR bank is the bank number.
func newImage() *mapper.Image {
	img := &mapper.Image{
		PRGROM:    make([]uint8, 8*mapper.Bank8k),
		CHR:       make([]uint8, 16*mapper.Bank1k),
		PRGRAM:    make([]uint8, 0x2000),
		Mirroring: mapper.Vertical,
	}
	for b := 0; b < 8; b++ {
		img.PRGROM[b*mapper.Bank8k] = uint8(b)
	}
	for b := 0; b < 16; b++ {
		img.CHR[b*mapper.Bank1k] = uint8(b)
	}
	return img
}

func TestScanlineIRQ(t *testing.T) {
	cart := mmc3.NewMMC3(newImage())

	cart.CPUWrite(0xc000, 4)
	cart.CPUWrite(0xc001, 0)
	cart.CPUWrite(0xe001, 0)

	// the counter is reloaded with 4 on the first call and reaches zero on
	// the fifth call
	for i := 1; i <= 4; i++ {
		cart.DecrementScanline()
		test.ExpectFailure(t, cart.IRQ(), i)
	}
	cart.DecrementScanline()
	test.ExpectSuccess(t, cart.IRQ())

	// the interrupt is held until acknowledged
	cart.DecrementScanline()
	test.ExpectSuccess(t, cart.IRQ())

	// disabling interrupts acknowledges the pending interrupt
	cart.CPUWrite(0xe000, 0)
	test.ExpectFailure(t, cart.IRQ())

	// counter reaches zero while interrupts are disabled
	for i := 0; i < 10; i++ {
		cart.DecrementScanline()
		test.ExpectFailure(t, cart.IRQ(), i)
	}
}

func TestScanlineIRQLatchZero(t *testing.T) {
	cart := mmc3.NewMMC3(newImage())
	cart.CPUWrite(0xe001, 0)

	// with a latch value of zero the interrupt is raised on every scanline
	cart.CPUWrite(0xc000, 0)
	cart.CPUWrite(0xc001, 0)
	cart.DecrementScanline()
	test.ExpectSuccess(t, cart.IRQ())
}

func TestPRGBanks(t *testing.T) {
	cart := mmc3.NewMMC3(newImage())

	banks := func(expected ...uint8) {
		t.Helper()
		for i, e := range expected {
			v, ok := cart.CPURead(0x8000 + uint16(i)*0x2000)
			test.ExpectSuccess(t, ok)
			test.ExpectEquality(t, v, e, i)
		}
	}

	// R6 and R7
	cart.CPUWrite(0x8000, 6)
	cart.CPUWrite(0x8001, 2)
	cart.CPUWrite(0x8000, 7)
	cart.CPUWrite(0x8001, 3)
	banks(2, 3, 6, 7)

	// PRG mode 1 swaps the R6 bank with the second last bank
	cart.CPUWrite(0x8000, 0x40)
	banks(6, 3, 2, 7)

	// bank numbers wrap to the size of PRG-ROM
	cart.CPUWrite(0x8000, 0x47)
	cart.CPUWrite(0x8001, 12)
	banks(6, 4, 2, 7)
}

func TestCHRBanks(t *testing.T) {
	cart := mmc3.NewMMC3(newImage())

	banks := func(expected ...uint8) {
		t.Helper()
		for i, e := range expected {
			v, ok := cart.PPURead(uint16(i) * 0x0400)
			test.ExpectSuccess(t, ok)
			test.ExpectEquality(t, v, e, i)
		}
	}

	// the low bit of R0 and R1 is ignored
	values := []uint8{5, 6, 8, 9, 10, 11}
	for r, v := range values {
		cart.CPUWrite(0x8000, uint8(r))
		cart.CPUWrite(0x8001, v)
	}
	banks(4, 5, 6, 7, 8, 9, 10, 11)

	// CHR inversion
	cart.CPUWrite(0x8000, 0x80)
	banks(8, 9, 10, 11, 4, 5, 6, 7)
}

func TestMirroring(t *testing.T) {
	cart := mmc3.NewMMC3(newImage())
	test.ExpectEquality(t, cart.Mirroring(), mapper.Vertical)
	cart.CPUWrite(0xa000, 1)
	test.ExpectEquality(t, cart.Mirroring(), mapper.Horizontal)
	cart.CPUWrite(0xa000, 0)
	test.ExpectEquality(t, cart.Mirroring(), mapper.Vertical)

	// four screen cartridges ignore the mirroring register
	img := newImage()
	img.Mirroring = mapper.FourScreen
	cart = mmc3.NewMMC3(img)
	cart.CPUWrite(0xa000, 1)
	test.ExpectEquality(t, cart.Mirroring(), mapper.FourScreen)
}

func TestRAMProtect(t *testing.T) {
	cart := mmc3.NewMMC3(newImage())
	cart.CPUWrite(0x6000, 0x12)
	v, _ := cart.CPURead(0x6000)
	test.ExpectEquality(t, v, uint8(0x12))

	// write protect
	cart.CPUWrite(0xa001, 0xc0)
	cart.CPUWrite(0x6000, 0x34)
	v, _ = cart.CPURead(0x6000)
	test.ExpectEquality(t, v, uint8(0x12))

	// disabled
	cart.CPUWrite(0xa001, 0x00)
	v, ok := cart.CPURead(0x6000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0))
}

func TestSaveState(t *testing.T) {
	cart := mmc3.NewMMC3(newImage())
	cart.CPUWrite(0x8000, 6)
	cart.CPUWrite(0x8001, 5)
	cart.CPUWrite(0xc000, 2)
	cart.CPUWrite(0xc001, 0)
	cart.CPUWrite(0xe001, 0)
	cart.DecrementScanline()

	enc := state.NewEncoder()
	cart.SaveState(enc)

	other := mmc3.NewMMC3(newImage())
	dec := state.NewDecoder(enc.Data())
	other.LoadState(dec)
	test.DemandSuccess(t, dec.Err())
	test.ExpectEquality(t, other.String(), cart.String())

	// the restored counter reaches zero after two more scanlines
	other.DecrementScanline()
	test.ExpectFailure(t, other.IRQ())
	other.DecrementScanline()
	test.ExpectSuccess(t, other.IRQ())
}
