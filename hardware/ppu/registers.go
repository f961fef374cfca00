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

import (
	"fmt"
	"strings"
)

// CPU addresses of the PPU registers. The registers are mirrored every eight
// bytes between 0x2000 and 0x3fff.
const (
	PPUCTRL   = 0x2000
	PPUMASK   = 0x2001
	PPUSTATUS = 0x2002
	OAMADDR   = 0x2003
	OAMDATA   = 0x2004
	PPUSCROLL = 0x2005
	PPUADDR   = 0x2006
	PPUDATA   = 0x2007
)

// RegisterNames is indexed by the lower three bits of a register address.
var RegisterNames = [8]string{
	"PPUCTRL", "PPUMASK", "PPUSTATUS", "OAMADDR",
	"OAMDATA", "PPUSCROLL", "PPUADDR", "PPUDATA",
}

// control is the value of PPUCTRL.
type control uint8

func (c control) increment() uint16 {
	if c&0x04 == 0x04 {
		return 32
	}
	return 1
}

func (c control) spriteTable() uint16 {
	return uint16(c&0x08) << 9
}

func (c control) backgroundTable() uint16 {
	return uint16(c&0x10) << 8
}

func (c control) spriteHeight() int {
	if c&0x20 == 0x20 {
		return 16
	}
	return 8
}

func (c control) nmi() bool {
	return c&0x80 == 0x80
}

// mask is the value of PPUMASK.
type mask uint8

func (m mask) greyscale() bool {
	return m&0x01 == 0x01
}

func (m mask) backgroundLeft() bool {
	return m&0x02 == 0x02
}

func (m mask) spritesLeft() bool {
	return m&0x04 == 0x04
}

func (m mask) background() bool {
	return m&0x08 == 0x08
}

func (m mask) sprites() bool {
	return m&0x10 == 0x10
}

func (m mask) rendering() bool {
	return m&0x18 != 0x00
}

// bits in the PPUSTATUS register.
const (
	statusOverflow   = 0x20
	statusSpriteZero = 0x40
	statusVBlank     = 0x80
)

// Registers returns a summary of the CPU visible registers and the internal
// scroll registers.
func (ppu *PPU) Registers() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("ctrl=%02x mask=%02x status=%02x oamaddr=%02x\n", uint8(ppu.ctrl), uint8(ppu.mask), ppu.status, ppu.oamAddr))
	s.WriteString(fmt.Sprintf("v=%s\nt=%s\nx=%d w=%v", ppu.v, ppu.t, ppu.fineX, ppu.w))
	return s.String()
}

// ReadRegister is called by the CPU bus on reads from 0x2000 to 0x3fff. Only
// the lower three bits of the address are significant. Reads of PPUSTATUS,
// OAMDATA and PPUDATA have side effects.
func (ppu *PPU) ReadRegister(addr uint16) uint8 {
	switch addr & 0x07 {
	case PPUSTATUS & 0x07:
		// the unused low bits are taken from the PPUDATA read buffer
		data := (ppu.status & 0xe0) | (ppu.buffer & 0x1f)
		ppu.status &^= statusVBlank
		ppu.w = false
		ppu.updateNMI()
		ppu.latch = data
		return data

	case OAMDATA & 0x07:
		ppu.latch = ppu.oam[ppu.oamAddr]
		return ppu.latch

	case PPUDATA & 0x07:
		a := uint16(ppu.v) & 0x3fff
		var data uint8
		if a < 0x3f00 {
			// read-behind buffer
			data = ppu.buffer
			ppu.buffer = ppu.read(a)
		} else {
			// palette reads are immediate. the buffer is filled with the
			// nametable data underneath the palette
			data = (ppu.read(a) & 0x3f) | (ppu.latch & 0xc0)
			ppu.buffer = ppu.read(a - 0x1000)
		}
		ppu.v = loopy((uint16(ppu.v) + ppu.ctrl.increment()) & 0x7fff)
		ppu.latch = data
		return data
	}

	// write-only registers return the value last seen on the data bus
	return ppu.latch
}

// PeekRegister returns the value that would be returned by ReadRegister()
// but without any side effects.
func (ppu *PPU) PeekRegister(addr uint16) uint8 {
	switch addr & 0x07 {
	case PPUSTATUS & 0x07:
		return (ppu.status & 0xe0) | (ppu.buffer & 0x1f)
	case OAMDATA & 0x07:
		return ppu.oam[ppu.oamAddr]
	case PPUDATA & 0x07:
		a := uint16(ppu.v) & 0x3fff
		if a < 0x3f00 {
			return ppu.buffer
		}
		return (ppu.read(a) & 0x3f) | (ppu.latch & 0xc0)
	}
	return ppu.latch
}

// WriteRegister is called by the CPU bus on writes to 0x2000 to 0x3fff.
// Only the lower three bits of the address are significant.
func (ppu *PPU) WriteRegister(addr uint16, data uint8) {
	ppu.latch = data

	switch addr & 0x07 {
	case PPUCTRL & 0x07:
		ppu.ctrl = control(data)
		ppu.t.setNametable(data)
		ppu.updateNMI()

	case PPUMASK & 0x07:
		ppu.mask = mask(data)

	case PPUSTATUS & 0x07:
		// read-only

	case OAMADDR & 0x07:
		ppu.oamAddr = data

	case OAMDATA & 0x07:
		ppu.oam[ppu.oamAddr] = data
		ppu.oamAddr++

	case PPUSCROLL & 0x07:
		if !ppu.w {
			ppu.t.setCoarseX(data >> 3)
			ppu.fineX = data & 0x07
		} else {
			ppu.t.setFineY(data)
			ppu.t.setCoarseY(data >> 3)
		}
		ppu.w = !ppu.w

	case PPUADDR & 0x07:
		if !ppu.w {
			ppu.t = (ppu.t & 0x00ff) | (loopy(data&0x3f) << 8)
		} else {
			ppu.t = (ppu.t & 0xff00) | loopy(data)
			ppu.v = ppu.t
		}
		ppu.w = !ppu.w

	case PPUDATA & 0x07:
		ppu.write(uint16(ppu.v)&0x3fff, data)
		ppu.v = loopy((uint16(ppu.v) + ppu.ctrl.increment()) & 0x7fff)
	}
}

// WriteOAM writes directly to OAM at the current OAM address and then
// increments the address. Used by OAM DMA.
func (ppu *PPU) WriteOAM(data uint8) {
	ppu.oam[ppu.oamAddr] = data
	ppu.oamAddr++
}

// updateNMI sets the NMI edge if the NMI output of the PPU has gone from
// inactive to active. The output is active when vblank is set and NMI
// generation is enabled in PPUCTRL, so enabling NMI during vblank causes an
// immediate NMI.
func (ppu *PPU) updateNMI() {
	output := ppu.ctrl.nmi() && ppu.status&statusVBlank == statusVBlank
	if output && !ppu.nmiOutput {
		ppu.nmiEdge = true
	}
	ppu.nmiOutput = output
}
