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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case IO:
		return "IO"
	case Test:
		return "Test"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the NES.
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	IO
	Test
	Cartridge
)

// The origin and memory top for each area of memory.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginAPU  = uint16(0x4000)
	MemtopAPU  = uint16(0x4017)
	OriginTest = uint16(0x4018)
	MemtopTest = uint16(0x401f)
	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// Masks to apply to RAM and PPU addresses to remove the mirror bits.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x2007)
)

// Addresses in the APU range that belong to other parts of the system.
const (
	OAMDMA  = uint16(0x4014)
	JOYPAD1 = uint16(0x4016)
	JOYPAD2 = uint16(0x4017)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// MapAddress translates the address to the primary address of the area it is
// in.
//
// Note that JOYPAD2 is an IO address when read and an APU address (the frame
// counter) when written. MapAddress() returns IO for the address and leaves
// it to the caller to make the distinction.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return address & MaskPPU, PPU
	case address == OAMDMA || address == JOYPAD1 || address == JOYPAD2:
		return address, IO
	case address <= MemtopAPU:
		return address, APU
	case address <= MemtopTest:
		return address, Test
	}
	return address, Cartridge
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
