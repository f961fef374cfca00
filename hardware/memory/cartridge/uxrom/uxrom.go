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

// Package uxrom implements mapper 2. The 16k bank at 0x8000 is selected by
// the low nibble of any write to the ROM window. The 16k bank at 0xc000 is
// fixed to the last bank.
package uxrom

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/state"
)

// UxROM implements the mapper.CartMapper interface.
type UxROM struct {
	img  *mapper.Image
	bank int
}

// NewUxROM is the preferred method of initialisation for the UxROM type.
func NewUxROM(img *mapper.Image) *UxROM {
	return &UxROM{img: img}
}

func (cart *UxROM) String() string {
	return fmt.Sprintf("%s %s", cart.ID(), cart.MappedBanks())
}

// ID implements the mapper.CartMapper interface.
func (cart *UxROM) ID() string {
	return "UxROM"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *UxROM) MappedBanks() string {
	n := mapper.NumBanks(len(cart.img.PRGROM), mapper.Bank16k)
	return mapper.SummariseBanks([]mapper.BankInfo{
		{Label: "PRG", Origin: 0x8000, Number: cart.bank % n, Size: mapper.Bank16k},
		{Label: "PRG", Origin: 0xc000, Number: n - 1, Size: mapper.Bank16k},
	})
}

// Reset implements the mapper.CartMapper interface.
func (cart *UxROM) Reset() {
	cart.bank = 0
}

// CPURead implements the mapper.CartMapper interface.
func (cart *UxROM) CPURead(addr uint16) (uint8, bool) {
	switch {
	case addr >= 0xc000:
		offset := mapper.BankOffset(-1, mapper.Bank16k, len(cart.img.PRGROM))
		return cart.img.ReadPRGROM(offset + int(addr-0xc000)), true
	case addr >= mapper.OriginPRGROM:
		offset := mapper.BankOffset(cart.bank, mapper.Bank16k, len(cart.img.PRGROM))
		return cart.img.ReadPRGROM(offset + int(addr-mapper.OriginPRGROM)), true
	}
	return cart.img.ReadPRGRAM(addr)
}

// CPUWrite implements the mapper.CartMapper interface.
func (cart *UxROM) CPUWrite(addr uint16, data uint8) bool {
	if addr >= mapper.OriginPRGROM {
		cart.bank = int(data & 0x0f)
		return true
	}
	return cart.img.WritePRGRAM(addr, data)
}

// PPURead implements the mapper.CartMapper interface.
func (cart *UxROM) PPURead(addr uint16) (uint8, bool) {
	if addr < 0x2000 {
		return cart.img.ReadCHR(int(addr)), true
	}
	return 0, false
}

// PPUWrite implements the mapper.CartMapper interface.
func (cart *UxROM) PPUWrite(addr uint16, data uint8) bool {
	if addr < 0x2000 {
		cart.img.WriteCHR(int(addr), data)
		return true
	}
	return false
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *UxROM) Mirroring() mapper.Mirroring {
	return cart.img.Mirroring
}

// SaveState implements the mapper.CartMapper interface.
func (cart *UxROM) SaveState(enc *state.Encoder) {
	enc.Section("UXRM")
	enc.Int(cart.bank)
	cart.img.SaveState(enc)
}

// LoadState implements the mapper.CartMapper interface.
func (cart *UxROM) LoadState(dec *state.Decoder) {
	dec.Section("UXRM")
	cart.bank = dec.Int()
	cart.img.LoadState(dec)
}
