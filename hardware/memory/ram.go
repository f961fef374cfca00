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

package memory

import (
	"fmt"
	"strings"
)

// RAMSize is the amount of internal RAM in the NES.
const RAMSize = 0x0800

// RAM is the 2k of internal RAM.
type RAM [RAMSize]uint8

func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < RAMSize/16; y++ {
		s.WriteString(fmt.Sprintf("%03X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram[y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Page returns a summary of a single 256 byte page of RAM.
func (ram *RAM) Page(page uint8) string {
	s := strings.Builder{}
	origin := (int(page) << 8) % RAMSize
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%04X |", origin+y*16))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram[origin+y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
