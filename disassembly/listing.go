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

package disassembly

import (
	"fmt"
	"io"
)

// Listing writes the linear disassembly of count instructions, starting at
// the address. Every byte is assumed to be the start of an instruction, which
// means that data will also be shown as instructions.
//
// Returns the address following the last instruction.
func Listing(w io.Writer, mem Peeker, address uint16, count int) (uint16, error) {
	for i := 0; i < count; i++ {
		e := Decode(mem, address)
		if _, err := fmt.Fprintln(w, e); err != nil {
			return address, err
		}
		address = e.Next()
	}
	return address, nil
}
