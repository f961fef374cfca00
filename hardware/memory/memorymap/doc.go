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

// Package memorymap facilitates the translation of CPU addresses to primary
// address equivalents.
//
// Internal RAM is mirrored four times between 0x0000 and 0x1fff and the eight
// PPU registers are mirrored throughout 0x2000 to 0x3fff. The MapAddress()
// function returns the area an address belongs to and the primary address
// in that area.
//
//	ma, area := memorymap.MapAddress(address)
//
// Addresses in the cartridge area are not changed by MapAddress(). How the
// cartridge decodes addresses is the concern of the cartridge mapper.
package memorymap
