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

// Package cnrom implements mapper 3. PRG-ROM is fixed. The 8k CHR bank is
// selected by the low two bits of any write to the ROM window.
package cnrom

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/state"
)

// CNROM implements the mapper.CartMapper interface.
type CNROM struct {
	img  *mapper.Image
	bank int
}

// NewCNROM is the preferred method of initialisation for the CNROM type.
func NewCNROM(img *mapper.Image) *CNROM {
	return &CNROM{img: img}
}

func (cart *CNROM) String() string {
	return fmt.Sprintf("%s %s", cart.ID(), cart.MappedBanks())
}

// ID implements the mapper.CartMapper interface.
func (cart *CNROM) ID() string {
	return "CNROM"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *CNROM) MappedBanks() string {
	n := mapper.NumBanks(len(cart.img.CHR), mapper.Bank8k)
	return mapper.SummariseBanks([]mapper.BankInfo{
		{Label: "CHR", Origin: 0x0000, Number: cart.bank % n, Size: mapper.Bank8k},
	})
}

// Reset implements the mapper.CartMapper interface.
func (cart *CNROM) Reset() {
	cart.bank = 0
}

// CPURead implements the mapper.CartMapper interface.
func (cart *CNROM) CPURead(addr uint16) (uint8, bool) {
	if addr >= mapper.OriginPRGROM {
		return cart.img.ReadPRGROM(int(addr - mapper.OriginPRGROM)), true
	}
	return cart.img.ReadPRGRAM(addr)
}

// CPUWrite implements the mapper.CartMapper interface.
func (cart *CNROM) CPUWrite(addr uint16, data uint8) bool {
	if addr >= mapper.OriginPRGROM {
		cart.bank = int(data & 0x03)
		return true
	}
	return cart.img.WritePRGRAM(addr, data)
}

func (cart *CNROM) chrIndex(addr uint16) int {
	return mapper.BankOffset(cart.bank, mapper.Bank8k, len(cart.img.CHR)) + int(addr)
}

// PPURead implements the mapper.CartMapper interface.
func (cart *CNROM) PPURead(addr uint16) (uint8, bool) {
	if addr < 0x2000 {
		return cart.img.ReadCHR(cart.chrIndex(addr)), true
	}
	return 0, false
}

// PPUWrite implements the mapper.CartMapper interface.
func (cart *CNROM) PPUWrite(addr uint16, data uint8) bool {
	if addr < 0x2000 {
		cart.img.WriteCHR(cart.chrIndex(addr), data)
		return true
	}
	return false
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *CNROM) Mirroring() mapper.Mirroring {
	return cart.img.Mirroring
}

// SaveState implements the mapper.CartMapper interface.
func (cart *CNROM) SaveState(enc *state.Encoder) {
	enc.Section("CNRM")
	enc.Int(cart.bank)
	cart.img.SaveState(enc)
}

// LoadState implements the mapper.CartMapper interface.
func (cart *CNROM) LoadState(dec *state.Decoder) {
	dec.Section("CNRM")
	cart.bank = dec.Int()
	cart.img.LoadState(dec)
}
