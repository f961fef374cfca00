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

// maximum number of sprites on a scanline with and without the sprite limit.
const (
	spritesPerScanline = 8
	spritesInOAM       = 64
)

// sprite is an entry in the list of sprites found on a scanline.
type sprite struct {
	// index of the sprite in OAM
	index int

	x    uint8
	attr uint8
	tile uint8

	// row of the sprite to be drawn. adjusted for vertical flipping when the
	// pattern is fetched
	row int

	// pattern shift registers, with horizontal flipping already applied
	lo uint8
	hi uint8

	// number of dots before the sprite starts shifting out
	counter uint8
}

type sprites struct {
	list  [spritesInOAM]sprite
	count int
}

type spritePixel struct {
	pixel   uint8
	palette uint8
	behind  bool
	zero    bool
}

// pixel returns the pixel of the highest priority sprite at the current
// position and then advances all sprites by one dot.
func (spr *sprites) pixel() spritePixel {
	var p spritePixel

	for i := 0; i < spr.count; i++ {
		s := &spr.list[i]

		if s.counter > 0 {
			s.counter--
			continue
		}

		if p.pixel == 0 {
			v := (s.lo >> 7) | ((s.hi >> 7) << 1)
			if v != 0 {
				p = spritePixel{
					pixel:   v,
					palette: s.attr & 0x03,
					behind:  s.attr&0x20 == 0x20,
					zero:    s.index == 0,
				}
			}
		}

		s.lo <<= 1
		s.hi <<= 1
	}

	return p
}

// evaluateSprites finds the sprites in OAM that are on the next scanline.
//
// The sprite overflow flag is set if more than eight sprites are found. The
// hardware bug that causes the flag to be set or not set incorrectly in some
// situations is not emulated.
func (ppu *PPU) evaluateSprites() {
	height := ppu.ctrl.spriteHeight()

	limit := spritesInOAM
	if ppu.spriteLimit() {
		limit = spritesPerScanline
	}

	found := 0
	ppu.spr.count = 0

	for i := 0; i < spritesInOAM; i++ {
		// the Y position in OAM is one less than the scanline on which the
		// sprite starts
		row := ppu.scanline - int(ppu.oam[i*4])
		if row < 0 || row >= height {
			continue
		}

		found++
		if found > spritesPerScanline {
			ppu.status |= statusOverflow
		}

		if ppu.spr.count < limit {
			ppu.spr.list[ppu.spr.count] = sprite{
				index: i,
				tile:  ppu.oam[i*4+1],
				attr:  ppu.oam[i*4+2],
				x:     ppu.oam[i*4+3],
				row:   row,
			}
			ppu.spr.count++
		}
	}
}

// fetchSprites reads the pattern data for the sprites found by
// evaluateSprites().
func (ppu *PPU) fetchSprites() {
	height := ppu.ctrl.spriteHeight()

	for i := 0; i < ppu.spr.count; i++ {
		s := &ppu.spr.list[i]

		row := s.row
		if s.attr&0x80 == 0x80 {
			row = height - 1 - row
		}

		var addr uint16
		if height == 16 {
			// the bottom bit of the tile number selects the pattern table
			tile := uint16(s.tile & 0xfe)
			if row >= 8 {
				tile++
				row -= 8
			}
			addr = uint16(s.tile&0x01)<<12 | tile<<4 | uint16(row)
		} else {
			addr = ppu.ctrl.spriteTable() | uint16(s.tile)<<4 | uint16(row)
		}

		s.lo = ppu.read(addr)
		s.hi = ppu.read(addr + 8)

		if s.attr&0x40 == 0x40 {
			s.lo = reverse(s.lo)
			s.hi = reverse(s.hi)
		}

		s.counter = s.x
	}
}

func reverse(b uint8) uint8 {
	b = (b&0xf0)>>4 | (b&0x0f)<<4
	b = (b&0xcc)>>2 | (b&0x33)<<2
	b = (b&0xaa)>>1 | (b&0x55)<<1
	return b
}
