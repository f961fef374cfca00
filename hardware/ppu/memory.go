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

package ppu

import "github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"

// Cartridge is the PPU's view of the cartridge. The PPU address space below
// 0x2000 is always handled by the cartridge. The cartridge can also claim the
// nametable range by returning true from PPURead() and PPUWrite().
type Cartridge interface {
	PPURead(addr uint16) (uint8, bool)
	PPUWrite(addr uint16, data uint8) bool
	Mirroring() mapper.Mirroring
}

// size of the internal nametable memory. the NES has only 2k of VRAM but the
// additional 2k is used by four screen cartridges, which would otherwise
// supply their own memory.
const vramSize = 0x1000

func (ppu *PPU) nametableIndex(addr uint16) int {
	m := mapper.FourScreen
	if ppu.cart != nil {
		m = ppu.cart.Mirroring()
	}
	return m.Nametable(addr)*0x0400 + int(addr&0x03ff)
}

// paletteIndex returns the index into palette memory for the address. The
// backdrop entries of the sprite palettes mirror those of the background
// palettes.
func paletteIndex(addr uint16) uint16 {
	idx := addr & 0x1f
	if idx&0x13 == 0x10 {
		idx &^= 0x10
	}
	return idx
}

// read a byte from the PPU address space.
func (ppu *PPU) read(addr uint16) uint8 {
	addr &= 0x3fff

	if addr >= 0x3f00 {
		data := ppu.palette[paletteIndex(addr)]
		if ppu.mask.greyscale() {
			data &= 0x30
		}
		return data
	}

	if ppu.cart != nil {
		if data, ok := ppu.cart.PPURead(addr); ok {
			return data
		}
	}

	if addr >= 0x2000 {
		return ppu.vram[ppu.nametableIndex(addr)]
	}

	return 0
}

// write a byte to the PPU address space.
func (ppu *PPU) write(addr uint16, data uint8) {
	addr &= 0x3fff

	if addr >= 0x3f00 {
		ppu.palette[paletteIndex(addr)] = data & 0x3f
		return
	}

	if ppu.cart != nil && ppu.cart.PPUWrite(addr, data) {
		return
	}

	if addr >= 0x2000 {
		ppu.vram[ppu.nametableIndex(addr)] = data
	}
}

// Peek returns the value at the address in the PPU address space without
// side effects.
func (ppu *PPU) Peek(addr uint16) uint8 {
	return ppu.read(addr)
}

// OAM returns a copy of sprite memory.
func (ppu *PPU) OAM() [256]uint8 {
	return ppu.oam
}
