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

import "github.com/jetsetilly/gophernes/hardware/state"

// SaveState writes the state of the PPU to the encoder. The frame buffers are
// not included.
func (ppu *PPU) SaveState(enc *state.Encoder) {
	enc.Section("PPU_")
	enc.Uint8(uint8(ppu.ctrl))
	enc.Uint8(uint8(ppu.mask))
	enc.Uint8(ppu.status)
	enc.Uint8(ppu.oamAddr)
	enc.Uint8(ppu.latch)
	enc.Uint8(ppu.buffer)
	enc.Uint16(uint16(ppu.v))
	enc.Uint16(uint16(ppu.t))
	enc.Uint8(ppu.fineX)
	enc.Bool(ppu.w)
	enc.Bytes(ppu.vram[:])
	enc.Bytes(ppu.palette[:])
	enc.Bytes(ppu.oam[:])
	enc.Int(ppu.scanline)
	enc.Int(ppu.dot)
	enc.Uint64(ppu.frameNum)
	enc.Bool(ppu.oddFrame)
	enc.Bool(ppu.nmiOutput)
	enc.Bool(ppu.nmiEdge)

	enc.Uint8(ppu.bg.tile)
	enc.Uint8(ppu.bg.attribute)
	enc.Uint8(ppu.bg.patternLo)
	enc.Uint8(ppu.bg.patternHi)
	enc.Uint16(ppu.bg.shiftLo)
	enc.Uint16(ppu.bg.shiftHi)
	enc.Uint16(ppu.bg.shiftAttrLo)
	enc.Uint16(ppu.bg.shiftAttrHi)

	enc.Int(ppu.spr.count)
	for _, s := range ppu.spr.list[:ppu.spr.count] {
		enc.Int(s.index)
		enc.Uint8(s.x)
		enc.Uint8(s.attr)
		enc.Uint8(s.tile)
		enc.Int(s.row)
		enc.Uint8(s.lo)
		enc.Uint8(s.hi)
		enc.Uint8(s.counter)
	}
}

// LoadState restores the state of the PPU from the decoder. Errors are
// reported by the decoder's Err() function.
func (ppu *PPU) LoadState(dec *state.Decoder) {
	dec.Section("PPU_")
	ppu.ctrl = control(dec.Uint8())
	ppu.mask = mask(dec.Uint8())
	ppu.status = dec.Uint8()
	ppu.oamAddr = dec.Uint8()
	ppu.latch = dec.Uint8()
	ppu.buffer = dec.Uint8()
	ppu.v = loopy(dec.Uint16())
	ppu.t = loopy(dec.Uint16())
	ppu.fineX = dec.Uint8()
	ppu.w = dec.Bool()
	dec.Bytes(ppu.vram[:])
	dec.Bytes(ppu.palette[:])
	dec.Bytes(ppu.oam[:])
	ppu.scanline = dec.Int()
	if ppu.scanline < 0 || ppu.scanline >= ScanlinesPerFrame {
		dec.Invalid("scanline", ppu.scanline)
		ppu.scanline = 0
	}
	ppu.dot = dec.Int()
	if ppu.dot < 0 || ppu.dot >= DotsPerScanline {
		dec.Invalid("dot", ppu.dot)
		ppu.dot = 0
	}
	ppu.frameNum = dec.Uint64()
	ppu.oddFrame = dec.Bool()
	ppu.nmiOutput = dec.Bool()
	ppu.nmiEdge = dec.Bool()

	ppu.bg.tile = dec.Uint8()
	ppu.bg.attribute = dec.Uint8()
	ppu.bg.patternLo = dec.Uint8()
	ppu.bg.patternHi = dec.Uint8()
	ppu.bg.shiftLo = dec.Uint16()
	ppu.bg.shiftHi = dec.Uint16()
	ppu.bg.shiftAttrLo = dec.Uint16()
	ppu.bg.shiftAttrHi = dec.Uint16()

	ppu.spr.count = dec.Int()
	if ppu.spr.count < 0 || ppu.spr.count > spritesInOAM {
		dec.Invalid("sprite count", ppu.spr.count)
		ppu.spr.count = 0
	}
	for i := 0; i < ppu.spr.count; i++ {
		s := &ppu.spr.list[i]
		s.index = dec.Int()
		s.x = dec.Uint8()
		s.attr = dec.Uint8()
		s.tile = dec.Uint8()
		s.row = dec.Int()
		s.lo = dec.Uint8()
		s.hi = dec.Uint8()
		s.counter = dec.Uint8()
	}
}
