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

package addresses_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/addresses"
	"github.com/jetsetilly/gophernes/test"
)

func TestSymbols(t *testing.T) {
	test.ExpectEquality(t, addresses.Symbol(0x2002, true), "PPUSTATUS")
	test.ExpectEquality(t, addresses.Symbol(0x2002, false), "")
	test.ExpectEquality(t, addresses.Symbol(0x3ffe, false), "PPUADDR")
	test.ExpectEquality(t, addresses.Label(0x4014, false), "$4014 (OAMDMA)")
	test.ExpectEquality(t, addresses.Label(0x0300, true), "$0300")
}
