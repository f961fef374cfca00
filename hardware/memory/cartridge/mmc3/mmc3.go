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

// Package mmc3 implements mapper 4, the Nintendo MMC3.
//
// The MMC3 has four pairs of registers in the ROM window. Even addresses
// select the first register of a pair and odd addresses the second.
//
//	0x8000/0x8001	bank select / bank data
//	0xa000/0xa001	mirroring / PRG-RAM protect
//	0xc000/0xc001	IRQ latch / IRQ reload
//	0xe000/0xe001	IRQ disable / IRQ enable
//
// The scanline counter is clocked by the PPU, once per rendered scanline, by
// calling DecrementScanline().
package mmc3

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/state"
)

// MMC3 implements the mapper.CartMapper and mapper.ScanlineIRQ interfaces.
type MMC3 struct {
	img *mapper.Image

	// bank select register. bits 0-2 select the bank register to be
	// updated, bit 6 is the PRG mode and bit 7 is the CHR mode
	bankSelect uint8

	// the eight bank registers R0 to R7
	registers [8]uint8

	mirroring mapper.Mirroring

	// PRG-RAM protect register. bit 7 enables RAM and bit 6 denies writes
	ramProtect uint8

	irqLatch   uint8
	irqCounter uint8
	irqReload  bool
	irqEnabled bool
	irqPending bool

	// byte offsets of the four 8k PRG windows and the eight 1k CHR windows.
	// recalculated on every bank select or bank data write
	prgOffsets [4]int
	chrOffsets [8]int
}

// NewMMC3 is the preferred method of initialisation for the MMC3 type.
func NewMMC3(img *mapper.Image) *MMC3 {
	cart := &MMC3{img: img}
	cart.Reset()
	return cart
}

func (cart *MMC3) String() string {
	return fmt.Sprintf("%s [irq %d/%d] %s", cart.ID(), cart.irqCounter, cart.irqLatch, cart.MappedBanks())
}

// ID implements the mapper.CartMapper interface.
func (cart *MMC3) ID() string {
	return "MMC3"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *MMC3) MappedBanks() string {
	banks := make([]mapper.BankInfo, 0, len(cart.prgOffsets)+len(cart.chrOffsets))
	for i, o := range cart.prgOffsets {
		banks = append(banks, mapper.BankInfo{
			Label:  "PRG",
			Origin: mapper.OriginPRGROM + uint16(i*mapper.Bank8k),
			Number: o / mapper.Bank8k,
			Size:   mapper.Bank8k,
		})
	}
	for i, o := range cart.chrOffsets {
		banks = append(banks, mapper.BankInfo{
			Label:  "CHR",
			Origin: uint16(i * mapper.Bank1k),
			Number: o / mapper.Bank1k,
			Size:   mapper.Bank1k,
		})
	}
	return mapper.SummariseBanks(banks)
}

// Reset implements the mapper.CartMapper interface.
func (cart *MMC3) Reset() {
	cart.bankSelect = 0
	cart.registers = [8]uint8{0, 2, 4, 5, 6, 7, 0, 1}
	cart.mirroring = cart.img.Mirroring
	cart.ramProtect = 0x80
	cart.irqLatch = 0
	cart.irqCounter = 0
	cart.irqReload = false
	cart.irqEnabled = false
	cart.irqPending = false
	cart.update()
}

// update recalculates the bank offsets from the bank registers.
func (cart *MMC3) update() {
	prgLen := len(cart.img.PRGROM)
	r6 := mapper.BankOffset(int(cart.registers[6]&0x3f), mapper.Bank8k, prgLen)
	r7 := mapper.BankOffset(int(cart.registers[7]&0x3f), mapper.Bank8k, prgLen)
	secondLast := mapper.BankOffset(-2, mapper.Bank8k, prgLen)
	last := mapper.BankOffset(-1, mapper.Bank8k, prgLen)

	if cart.bankSelect&0x40 == 0x40 {
		cart.prgOffsets = [4]int{secondLast, r7, r6, last}
	} else {
		cart.prgOffsets = [4]int{r6, r7, secondLast, last}
	}

	chrLen := len(cart.img.CHR)
	bank := func(r uint8) int {
		return mapper.BankOffset(int(r), mapper.Bank1k, chrLen)
	}

	// R0 and R1 select 2k banks and ignore the low bit of the bank number
	var chr [8]int
	chr[0] = bank(cart.registers[0] & 0xfe)
	chr[1] = bank(cart.registers[0] | 0x01)
	chr[2] = bank(cart.registers[1] & 0xfe)
	chr[3] = bank(cart.registers[1] | 0x01)
	chr[4] = bank(cart.registers[2])
	chr[5] = bank(cart.registers[3])
	chr[6] = bank(cart.registers[4])
	chr[7] = bank(cart.registers[5])

	if cart.bankSelect&0x80 == 0x80 {
		// the 2k banks are at 0x1000 and the 1k banks are at 0x0000
		cart.chrOffsets = [8]int{chr[4], chr[5], chr[6], chr[7], chr[0], chr[1], chr[2], chr[3]}
	} else {
		cart.chrOffsets = chr
	}
}

// CPURead implements the mapper.CartMapper interface.
func (cart *MMC3) CPURead(addr uint16) (uint8, bool) {
	if addr >= mapper.OriginPRGROM {
		a := int(addr - mapper.OriginPRGROM)
		return cart.img.ReadPRGROM(cart.prgOffsets[a/mapper.Bank8k] + a%mapper.Bank8k), true
	}

	if addr >= mapper.OriginPRGRAM {
		if cart.ramProtect&0x80 != 0x80 {
			return 0, cart.img.HasPRGRAM()
		}
		return cart.img.ReadPRGRAM(addr)
	}

	return 0, false
}

// CPUWrite implements the mapper.CartMapper interface.
func (cart *MMC3) CPUWrite(addr uint16, data uint8) bool {
	if addr < mapper.OriginPRGROM {
		if addr >= mapper.OriginPRGRAM {
			if cart.ramProtect&0xc0 != 0x80 {
				return cart.img.HasPRGRAM()
			}
			return cart.img.WritePRGRAM(addr, data)
		}
		return false
	}

	even := addr&0x01 == 0x00

	switch {
	case addr < 0xa000:
		if even {
			cart.bankSelect = data
		} else {
			cart.registers[cart.bankSelect&0x07] = data
		}
		cart.update()

	case addr < 0xc000:
		if even {
			if cart.img.Mirroring != mapper.FourScreen {
				if data&0x01 == 0x01 {
					cart.mirroring = mapper.Horizontal
				} else {
					cart.mirroring = mapper.Vertical
				}
			}
		} else {
			cart.ramProtect = data
		}

	case addr < 0xe000:
		if even {
			cart.irqLatch = data
		} else {
			cart.irqCounter = 0
			cart.irqReload = true
		}

	default:
		if even {
			// disabling interrupts also acknowledges any pending interrupt
			cart.irqEnabled = false
			cart.irqPending = false
		} else {
			cart.irqEnabled = true
		}
	}

	return true
}

func (cart *MMC3) chrIndex(addr uint16) int {
	return cart.chrOffsets[addr/mapper.Bank1k] + int(addr%mapper.Bank1k)
}

// PPURead implements the mapper.CartMapper interface.
func (cart *MMC3) PPURead(addr uint16) (uint8, bool) {
	if addr < 0x2000 {
		return cart.img.ReadCHR(cart.chrIndex(addr)), true
	}
	return 0, false
}

// PPUWrite implements the mapper.CartMapper interface.
func (cart *MMC3) PPUWrite(addr uint16, data uint8) bool {
	if addr < 0x2000 {
		cart.img.WriteCHR(cart.chrIndex(addr), data)
		return true
	}
	return false
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *MMC3) Mirroring() mapper.Mirroring {
	return cart.mirroring
}

// IRQ implements the mapper.ScanlineIRQ interface.
func (cart *MMC3) IRQ() bool {
	return cart.irqPending
}

// DecrementScanline implements the mapper.ScanlineIRQ interface.
func (cart *MMC3) DecrementScanline() {
	if cart.irqCounter == 0 || cart.irqReload {
		cart.irqCounter = cart.irqLatch
		cart.irqReload = false
	} else {
		cart.irqCounter--
	}

	if cart.irqCounter == 0 && cart.irqEnabled {
		cart.irqPending = true
	}
}

// SaveState implements the mapper.CartMapper interface.
func (cart *MMC3) SaveState(enc *state.Encoder) {
	enc.Section("MMC3")
	enc.Uint8(cart.bankSelect)
	for _, r := range cart.registers {
		enc.Uint8(r)
	}
	enc.Int(int(cart.mirroring))
	enc.Uint8(cart.ramProtect)
	enc.Uint8(cart.irqLatch)
	enc.Uint8(cart.irqCounter)
	enc.Bool(cart.irqReload)
	enc.Bool(cart.irqEnabled)
	enc.Bool(cart.irqPending)
	cart.img.SaveState(enc)
}

// LoadState implements the mapper.CartMapper interface.
func (cart *MMC3) LoadState(dec *state.Decoder) {
	dec.Section("MMC3")
	cart.bankSelect = dec.Uint8()
	for i := range cart.registers {
		cart.registers[i] = dec.Uint8()
	}
	cart.mirroring = mapper.Mirroring(dec.Int())
	cart.ramProtect = dec.Uint8()
	cart.irqLatch = dec.Uint8()
	cart.irqCounter = dec.Uint8()
	cart.irqReload = dec.Bool()
	cart.irqEnabled = dec.Bool()
	cart.irqPending = dec.Bool()
	cart.img.LoadState(dec)
	cart.update()
}
