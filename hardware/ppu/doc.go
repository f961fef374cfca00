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

// Package ppu emulates the 2C02 picture processing unit of the NTSC NES.
//
// The PPU is advanced one dot at a time with the Step() function. There are
// 341 dots per scanline and 262 scanlines per frame. Scanlines 0 to 239 are
// visible, scanline 240 is idle, scanlines 241 to 260 are the vertical blank
// and scanline 261 is the pre-render scanline.
//
// Background tiles are fetched in eight dot groups and fed into sixteen bit
// shift registers, exactly as the real hardware does it. Sprites for the next
// scanline are evaluated at dot 257 and their pattern data fetched at dot 340.
//
// The sprite overflow flag is set whenever more than eight sprites are found
// on a scanline. The buggy diagonal OAM scan of the real hardware, which
// causes false positives and negatives, is not emulated.
//
// The PPU communicates with the rest of the console through the NMI() and
// NewFrame() functions, which the bus polls after every dot. Cartridges that
// implement the mapper.ScanlineIRQ interface are clocked once per rendered
// scanline, at dot 260.
package ppu
