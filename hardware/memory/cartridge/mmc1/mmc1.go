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

// Package mmc1 implements mapper 1, the Nintendo MMC1.
//
// The MMC1 is programmed through a five bit serial shift register. Each write
// to the ROM window shifts bit 0 of the data into the register from the top.
// On the fifth write the value is copied into one of four internal registers,
// selected by bits 13 and 14 of the address of the fifth write.
//
//	0x8000 to 0x9fff	control
//	0xa000 to 0xbfff	CHR bank 0
//	0xc000 to 0xdfff	CHR bank 1
//	0xe000 to 0xffff	PRG bank
//
// A write with bit 7 set resets the shift register and fixes the last PRG bank
// at 0xc000.
//
// The MMC1 ignores a write to the serial port that follows another write on
// the very next cycle. On the NES this only happens with read-modify-write
// instructions, which write the unmodified value before the result. The
// mapper implements the mapper.InstructionObserver interface to detect this
// and only accepts the first write made by any one instruction.
package mmc1

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/state"
)

// MMC1 implements the mapper.CartMapper and mapper.InstructionObserver
// interfaces.
type MMC1 struct {
	img *mapper.Image

	// the serial shift register and the number of bits shifted into it
	shift uint8
	count int

	// internal registers
	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8

	// byte offsets of the two 16k PRG windows and of the two 4k CHR windows.
	// recalculated whenever an internal register changes
	prgOffsets [2]int
	chrOffsets [2]int

	// observed is true once NotifyPC() has been called. written is true if
	// the serial port has been written to since the last call to NotifyPC()
	observed bool
	written  bool
}

// NewMMC1 is the preferred method of initialisation for the MMC1 type.
func NewMMC1(img *mapper.Image) *MMC1 {
	cart := &MMC1{img: img}
	cart.Reset()
	return cart
}

func (cart *MMC1) String() string {
	return fmt.Sprintf("%s [control %05b] %s", cart.ID(), cart.control, cart.MappedBanks())
}

// ID implements the mapper.CartMapper interface.
func (cart *MMC1) ID() string {
	return "MMC1"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *MMC1) MappedBanks() string {
	return mapper.SummariseBanks([]mapper.BankInfo{
		{Label: "PRG", Origin: 0x8000, Number: cart.prgOffsets[0] / mapper.Bank16k, Size: mapper.Bank16k},
		{Label: "PRG", Origin: 0xc000, Number: cart.prgOffsets[1] / mapper.Bank16k, Size: mapper.Bank16k},
		{Label: "CHR", Origin: 0x0000, Number: cart.chrOffsets[0] / mapper.Bank4k, Size: mapper.Bank4k},
		{Label: "CHR", Origin: 0x1000, Number: cart.chrOffsets[1] / mapper.Bank4k, Size: mapper.Bank4k},
	})
}

// Reset implements the mapper.CartMapper interface.
func (cart *MMC1) Reset() {
	cart.shift = 0
	cart.count = 0
	cart.control = 0x0c
	cart.chr0 = 0
	cart.chr1 = 0
	cart.prg = 0
	cart.written = false
	cart.update()
}

// Control returns the value of the control register.
func (cart *MMC1) Control() uint8 {
	return cart.control
}

// Registers returns the values of the CHR bank 0, CHR bank 1 and PRG bank
// registers.
func (cart *MMC1) Registers() (chr0 uint8, chr1 uint8, prg uint8) {
	return cart.chr0, cart.chr1, cart.prg
}

// NotifyPC implements the mapper.InstructionObserver interface.
func (cart *MMC1) NotifyPC(_ uint16) {
	cart.observed = true
	cart.written = false
}

func (cart *MMC1) serialWrite(addr uint16, data uint8) {
	if cart.observed {
		if cart.written {
			return
		}
		cart.written = true
	}

	if data&0x80 == 0x80 {
		cart.shift = 0
		cart.count = 0
		cart.control |= 0x0c
		cart.update()
		return
	}

	cart.shift = (cart.shift >> 1) | ((data & 0x01) << 4)
	cart.count++
	if cart.count < 5 {
		return
	}

	switch (addr >> 13) & 0x03 {
	case 0:
		cart.control = cart.shift
	case 1:
		cart.chr0 = cart.shift
	case 2:
		cart.chr1 = cart.shift
	case 3:
		cart.prg = cart.shift
	}

	cart.shift = 0
	cart.count = 0
	cart.update()
}

// update recalculates the bank offsets from the internal registers.
func (cart *MMC1) update() {
	prgLen := len(cart.img.PRGROM)

	// 512k cartridges (SUROM) use bit 4 of the CHR bank 0 register to select
	// the 256k half of PRG-ROM
	var outer int
	if prgLen > 0x40000 {
		outer = int(cart.chr0&0x10) * 0x04000
	}

	bank := int(cart.prg & 0x0f)
	switch (cart.control >> 2) & 0x03 {
	case 0, 1:
		// 32k mode ignores the low bit of the bank number
		cart.prgOffsets[0] = outer + mapper.BankOffset(bank>>1, mapper.Bank32k, min(prgLen, 0x40000))
		cart.prgOffsets[1] = cart.prgOffsets[0] + mapper.Bank16k
	case 2:
		cart.prgOffsets[0] = outer
		cart.prgOffsets[1] = outer + mapper.BankOffset(bank, mapper.Bank16k, min(prgLen, 0x40000))
	case 3:
		cart.prgOffsets[0] = outer + mapper.BankOffset(bank, mapper.Bank16k, min(prgLen, 0x40000))
		cart.prgOffsets[1] = outer + mapper.BankOffset(-1, mapper.Bank16k, min(prgLen, 0x40000))
	}

	chrLen := len(cart.img.CHR)
	if cart.control&0x10 == 0x10 {
		cart.chrOffsets[0] = mapper.BankOffset(int(cart.chr0), mapper.Bank4k, chrLen)
		cart.chrOffsets[1] = mapper.BankOffset(int(cart.chr1), mapper.Bank4k, chrLen)
	} else {
		// 8k mode ignores the low bit of the bank number
		cart.chrOffsets[0] = mapper.BankOffset(int(cart.chr0>>1), mapper.Bank8k, chrLen)
		cart.chrOffsets[1] = cart.chrOffsets[0] + mapper.Bank4k
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ramEnabled returns true if PRG-RAM is enabled by the PRG bank register.
func (cart *MMC1) ramEnabled() bool {
	return cart.prg&0x10 == 0x00
}

// CPURead implements the mapper.CartMapper interface.
func (cart *MMC1) CPURead(addr uint16) (uint8, bool) {
	switch {
	case addr >= 0xc000:
		return cart.img.ReadPRGROM(cart.prgOffsets[1] + int(addr-0xc000)), true
	case addr >= mapper.OriginPRGROM:
		return cart.img.ReadPRGROM(cart.prgOffsets[0] + int(addr-mapper.OriginPRGROM)), true
	case addr >= mapper.OriginPRGRAM:
		if !cart.ramEnabled() {
			// disabled RAM is still claimed by the cartridge
			return 0, cart.img.HasPRGRAM()
		}
		return cart.img.ReadPRGRAM(addr)
	}
	return 0, false
}

// CPUWrite implements the mapper.CartMapper interface.
func (cart *MMC1) CPUWrite(addr uint16, data uint8) bool {
	switch {
	case addr >= mapper.OriginPRGROM:
		cart.serialWrite(addr, data)
		return true
	case addr >= mapper.OriginPRGRAM:
		if !cart.ramEnabled() {
			return cart.img.HasPRGRAM()
		}
		return cart.img.WritePRGRAM(addr, data)
	}
	return false
}

func (cart *MMC1) chrIndex(addr uint16) int {
	if addr < 0x1000 {
		return cart.chrOffsets[0] + int(addr)
	}
	return cart.chrOffsets[1] + int(addr-0x1000)
}

// PPURead implements the mapper.CartMapper interface.
func (cart *MMC1) PPURead(addr uint16) (uint8, bool) {
	if addr < 0x2000 {
		return cart.img.ReadCHR(cart.chrIndex(addr)), true
	}
	return 0, false
}

// PPUWrite implements the mapper.CartMapper interface.
func (cart *MMC1) PPUWrite(addr uint16, data uint8) bool {
	if addr < 0x2000 {
		cart.img.WriteCHR(cart.chrIndex(addr), data)
		return true
	}
	return false
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *MMC1) Mirroring() mapper.Mirroring {
	switch cart.control & 0x03 {
	case 0:
		return mapper.OneScreenLower
	case 1:
		return mapper.OneScreenUpper
	case 2:
		return mapper.Vertical
	}
	return mapper.Horizontal
}

// SaveState implements the mapper.CartMapper interface.
func (cart *MMC1) SaveState(enc *state.Encoder) {
	enc.Section("MMC1")
	enc.Uint8(cart.shift)
	enc.Int(cart.count)
	enc.Uint8(cart.control)
	enc.Uint8(cart.chr0)
	enc.Uint8(cart.chr1)
	enc.Uint8(cart.prg)
	enc.Bool(cart.observed)
	enc.Bool(cart.written)
	cart.img.SaveState(enc)
}

// LoadState implements the mapper.CartMapper interface.
func (cart *MMC1) LoadState(dec *state.Decoder) {
	dec.Section("MMC1")
	cart.shift = dec.Uint8()
	cart.count = dec.Int()
	cart.control = dec.Uint8()
	cart.chr0 = dec.Uint8()
	cart.chr1 = dec.Uint8()
	cart.prg = dec.Uint8()
	cart.observed = dec.Bool()
	cart.written = dec.Bool()
	cart.img.LoadState(dec)
	cart.update()
}
