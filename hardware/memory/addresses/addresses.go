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

package addresses

import "fmt"

// CanonicalReadSymbols are the names of the registers that can be read.
var CanonicalReadSymbols = map[uint16]string{
	0x2002: "PPUSTATUS",
	0x2004: "OAMDATA",
	0x2007: "PPUDATA",
	0x4015: "SND_CHN",
	0x4016: "JOY1",
	0x4017: "JOY2",
}

// CanonicalWriteSymbols are the names of the registers that can be written.
var CanonicalWriteSymbols = map[uint16]string{
	0x2000: "PPUCTRL",
	0x2001: "PPUMASK",
	0x2003: "OAMADDR",
	0x2004: "OAMDATA",
	0x2005: "PPUSCROLL",
	0x2006: "PPUADDR",
	0x2007: "PPUDATA",
	0x4000: "SQ1_VOL",
	0x4001: "SQ1_SWEEP",
	0x4002: "SQ1_LO",
	0x4003: "SQ1_HI",
	0x4004: "SQ2_VOL",
	0x4005: "SQ2_SWEEP",
	0x4006: "SQ2_LO",
	0x4007: "SQ2_HI",
	0x4008: "TRI_LINEAR",
	0x400a: "TRI_LO",
	0x400b: "TRI_HI",
	0x400c: "NOISE_VOL",
	0x400e: "NOISE_LO",
	0x400f: "NOISE_HI",
	0x4010: "DMC_FREQ",
	0x4011: "DMC_RAW",
	0x4012: "DMC_START",
	0x4013: "DMC_LEN",
	0x4014: "OAMDMA",
	0x4015: "SND_CHN",
	0x4016: "JOY1",
	0x4017: "JOY2",
}

// Symbol returns the canonical name of the address with any PPU register
// mirroring removed. Returns the empty string if the address has no name.
func Symbol(address uint16, read bool) string {
	if address >= 0x2000 && address <= 0x3fff {
		address &= 0x2007
	}
	if read {
		return CanonicalReadSymbols[address]
	}
	return CanonicalWriteSymbols[address]
}

// Label returns the address formatted as a hex value, followed by the
// canonical name in parenthesis if it has one.
func Label(address uint16, read bool) string {
	if s := Symbol(address, read); s != "" {
		return fmt.Sprintf("$%04x (%s)", address, s)
	}
	return fmt.Sprintf("$%04x", address)
}
