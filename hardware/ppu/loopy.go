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

import "fmt"

// loopy is the fifteen bit VRAM address register. The internal v and t
// registers of the PPU both have this format:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy uint16

func (l loopy) String() string {
	return fmt.Sprintf("%04x [x %2d y %2d nt %d fy %d]", uint16(l), l.coarseX(), l.coarseY(), l.nametable(), l.fineY())
}

func (l loopy) coarseX() uint16 {
	return uint16(l) & 0x001f
}

func (l loopy) coarseY() uint16 {
	return (uint16(l) >> 5) & 0x001f
}

func (l loopy) nametable() uint16 {
	return (uint16(l) >> 10) & 0x0003
}

func (l loopy) fineY() uint16 {
	return (uint16(l) >> 12) & 0x0007
}

func (l *loopy) setCoarseX(v uint8) {
	*l = (*l &^ 0x001f) | loopy(v&0x1f)
}

func (l *loopy) setCoarseY(v uint8) {
	*l = (*l &^ 0x03e0) | (loopy(v&0x1f) << 5)
}

func (l *loopy) setNametable(v uint8) {
	*l = (*l &^ 0x0c00) | (loopy(v&0x03) << 10)
}

func (l *loopy) setFineY(v uint8) {
	*l = (*l &^ 0x7000) | (loopy(v&0x07) << 12)
}

// incrementX moves to the next tile horizontally, switching to the
// neighbouring nametable when coarse X wraps.
func (l *loopy) incrementX() {
	if l.coarseX() == 31 {
		*l &^= 0x001f
		*l ^= 0x0400
		return
	}
	*l++
}

// incrementY moves to the next pixel row. Coarse Y wraps at 29, switching
// vertical nametable. Values of 30 and 31 are in the attribute table and wrap
// to zero without switching nametable.
func (l *loopy) incrementY() {
	if l.fineY() < 7 {
		*l += 0x1000
		return
	}

	*l &^= 0x7000

	switch y := l.coarseY(); y {
	case 29:
		l.setCoarseY(0)
		*l ^= 0x0800
	case 31:
		l.setCoarseY(0)
	default:
		l.setCoarseY(uint8(y + 1))
	}
}

// copyX copies the horizontal bits from t.
func (l *loopy) copyX(t loopy) {
	*l = (*l &^ 0x041f) | (t & 0x041f)
}

// copyY copies the vertical bits from t.
func (l *loopy) copyY(t loopy) {
	*l = (*l &^ 0x7be0) | (t & 0x7be0)
}

// tileAddress is the address in the nametable of the current tile.
func (l loopy) tileAddress() uint16 {
	return 0x2000 | (uint16(l) & 0x0fff)
}

// attributeAddress is the address in the attribute table of the current
// tile.
func (l loopy) attributeAddress() uint16 {
	return 0x23c0 | (uint16(l) & 0x0c00) | ((l.coarseY() >> 2) << 3) | (l.coarseX() >> 2)
}
