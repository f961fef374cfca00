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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/terminal/commandline"
	"github.com/jetsetilly/gophernes/test"
)

func TestTokeniser(t *testing.T) {
	tk := commandline.TokeniseInput("  peek   $c000 16 ")
	test.ExpectEquality(t, tk.String(), "peek   $c000 16")
	test.ExpectEquality(t, tk.Remaining(), 3)

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "PEEK")

	s, ok = tk.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "0xc000")
	test.ExpectEquality(t, tk.Remainder(), "0xc000 16")

	v, err := tk.GetNumber("address", 0xffff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint64(0xc000))

	v, err = tk.GetOptionalNumber(1, 0xff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint64(16))
	test.ExpectSuccess(t, tk.IsEnd())

	v, err = tk.GetOptionalNumber(1, 0xff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint64(1))

	_, err = tk.GetNumber("address", 0xffff)
	test.ExpectSuccess(t, curated.Is(err, commandline.MissingArgument))
	test.ExpectEquality(t, err.Error(), "missing argument for address")

	tk.Unget()
	tk.Unget()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "0xc000")

	tk.Reset()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "PEEK")
}

func TestParseNumber(t *testing.T) {
	v, err := commandline.ParseNumber("0x10", 0xff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint64(16))

	_, err = commandline.ParseNumber("256", 0xff)
	test.ExpectSuccess(t, curated.Is(err, commandline.InvalidNumber))

	_, err = commandline.ParseNumber("x", 0xff)
	test.ExpectSuccess(t, curated.Is(err, commandline.InvalidNumber))

	test.ExpectEquality(t, commandline.TokeniseInput("").Remaining(), 0)
}
