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

// background holds the tile data latched by the fetch pipeline and the
// shift registers from which background pixels are taken.
type background struct {
	tile      uint8
	attribute uint8
	patternLo uint8
	patternHi uint8

	shiftLo     uint16
	shiftHi     uint16
	shiftAttrLo uint16
	shiftAttrHi uint16
}

// load the latched tile data into the low byte of the shift registers.
func (bg *background) load() {
	bg.shiftLo = (bg.shiftLo & 0xff00) | uint16(bg.patternLo)
	bg.shiftHi = (bg.shiftHi & 0xff00) | uint16(bg.patternHi)

	// attribute bits are expanded to fill the byte so that the registers can
	// be shifted in step with the pattern registers
	bg.shiftAttrLo &= 0xff00
	if bg.attribute&0x01 == 0x01 {
		bg.shiftAttrLo |= 0x00ff
	}
	bg.shiftAttrHi &= 0xff00
	if bg.attribute&0x02 == 0x02 {
		bg.shiftAttrHi |= 0x00ff
	}
}

func (bg *background) shift() {
	bg.shiftLo <<= 1
	bg.shiftHi <<= 1
	bg.shiftAttrLo <<= 1
	bg.shiftAttrHi <<= 1
}

// pixel returns the two bit pattern value and the palette number at the fine
// X position.
func (bg *background) pixel(fineX uint8) (uint8, uint8) {
	bit := uint16(0x8000) >> fineX

	var pixel, palette uint8
	if bg.shiftLo&bit != 0 {
		pixel |= 0x01
	}
	if bg.shiftHi&bit != 0 {
		pixel |= 0x02
	}
	if bg.shiftAttrLo&bit != 0 {
		palette |= 0x01
	}
	if bg.shiftAttrHi&bit != 0 {
		palette |= 0x02
	}
	return pixel, palette
}

// fetchBackground performs the memory fetches and scroll register updates of
// the current dot. Only called on the visible and pre-render scanlines when
// rendering is enabled.
func (ppu *PPU) fetchBackground(preRender bool) {
	d := ppu.dot

	if (d >= 2 && d <= 257) || (d >= 321 && d <= 337) {
		ppu.bg.shift()

		// each tile takes eight dots to fetch
		switch (d - 1) % 8 {
		case 0:
			ppu.bg.load()
			ppu.bg.tile = ppu.read(ppu.v.tileAddress())
		case 2:
			at := ppu.read(ppu.v.attributeAddress())
			if ppu.v.coarseY()&0x02 == 0x02 {
				at >>= 4
			}
			if ppu.v.coarseX()&0x02 == 0x02 {
				at >>= 2
			}
			ppu.bg.attribute = at & 0x03
		case 4:
			ppu.bg.patternLo = ppu.read(ppu.patternAddress())
		case 6:
			ppu.bg.patternHi = ppu.read(ppu.patternAddress() + 8)
		case 7:
			ppu.v.incrementX()
		}
	}

	switch {
	case d == 256:
		ppu.v.incrementY()
	case d == 257:
		ppu.v.copyX(ppu.t)
	case preRender && d >= 280 && d <= 304:
		ppu.v.copyY(ppu.t)
	}
}

func (ppu *PPU) patternAddress() uint16 {
	return ppu.ctrl.backgroundTable() | uint16(ppu.bg.tile)<<4 | ppu.v.fineY()
}
