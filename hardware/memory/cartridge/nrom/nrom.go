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

// Package nrom implements mapper 0. There is no bank switching. 16k PRG-ROM
// images are mirrored across the entire 32k window.
package nrom

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/state"
)

// NROM implements the mapper.CartMapper interface.
type NROM struct {
	img *mapper.Image
}

// NewNROM is the preferred method of initialisation for the NROM type.
func NewNROM(img *mapper.Image) *NROM {
	return &NROM{img: img}
}

func (cart *NROM) String() string {
	return fmt.Sprintf("%s [%dk PRG] %s", cart.ID(), len(cart.img.PRGROM)/1024, cart.MappedBanks())
}

// ID implements the mapper.CartMapper interface.
func (cart *NROM) ID() string {
	return "NROM"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *NROM) MappedBanks() string {
	return mapper.SummariseBanks([]mapper.BankInfo{
		{Label: "PRG", Origin: 0x8000, Number: 0, Size: mapper.Bank16k},
		{Label: "PRG", Origin: 0xc000, Number: mapper.NumBanks(len(cart.img.PRGROM), mapper.Bank16k) - 1, Size: mapper.Bank16k},
	})
}

// Reset implements the mapper.CartMapper interface.
func (cart *NROM) Reset() {
}

// CPURead implements the mapper.CartMapper interface.
func (cart *NROM) CPURead(addr uint16) (uint8, bool) {
	if addr >= mapper.OriginPRGROM {
		return cart.img.ReadPRGROM(int(addr - mapper.OriginPRGROM)), true
	}
	return cart.img.ReadPRGRAM(addr)
}

// CPUWrite implements the mapper.CartMapper interface.
func (cart *NROM) CPUWrite(addr uint16, data uint8) bool {
	if addr >= mapper.OriginPRGROM {
		return true
	}
	return cart.img.WritePRGRAM(addr, data)
}

// PPURead implements the mapper.CartMapper interface.
func (cart *NROM) PPURead(addr uint16) (uint8, bool) {
	if addr < 0x2000 {
		return cart.img.ReadCHR(int(addr)), true
	}
	return 0, false
}

// PPUWrite implements the mapper.CartMapper interface.
func (cart *NROM) PPUWrite(addr uint16, data uint8) bool {
	if addr < 0x2000 {
		cart.img.WriteCHR(int(addr), data)
		return true
	}
	return false
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *NROM) Mirroring() mapper.Mirroring {
	return cart.img.Mirroring
}

// SaveState implements the mapper.CartMapper interface.
func (cart *NROM) SaveState(enc *state.Encoder) {
	enc.Section("NROM")
	cart.img.SaveState(enc)
}

// LoadState implements the mapper.CartMapper interface.
func (cart *NROM) LoadState(dec *state.Decoder) {
	dec.Section("NROM")
	cart.img.LoadState(dec)
}
