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

package mapper

// Mirroring describes how the 4k nametable address space is mapped onto the
// PPU's nametable RAM.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	OneScreenLower
	OneScreenUpper
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case OneScreenLower:
		return "one screen (lower)"
	case OneScreenUpper:
		return "one screen (upper)"
	case FourScreen:
		return "four screen"
	}
	return "unknown"
}

// Nametable returns the index of the 1k nametable page that the address (in
// the range 0x2000 to 0x3eff) maps to. With FourScreen mirroring all four
// pages are distinct.
func (m Mirroring) Nametable(addr uint16) int {
	table := int(addr>>10) & 0x03
	switch m {
	case Horizontal:
		return table >> 1
	case Vertical:
		return table & 0x01
	case OneScreenLower:
		return 0
	case OneScreenUpper:
		return 1
	}
	return table
}
