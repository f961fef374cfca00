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

// Package assert contains test helpers for the registers package. It is used
// by the tests of the registers package and of the cpu package.
package assert

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
)

// Assert compares a register with an expected value. Registers and the program
// counter are compared with int values. The status register can be compared
// with an int or with a string of the form returned by StatusRegister.String().
func Assert(t *testing.T, r, x interface{}) {
	t.Helper()

	switch r := r.(type) {
	case registers.Register:
		v, ok := x.(int)
		if !ok {
			t.Fatalf("assert failed (register must be compared with int)")
		}
		if int(r.Value()) != v {
			t.Errorf("assert Register %s failed (%#02x - wanted %#02x)", r.Label(), r.Value(), v)
		}

	case registers.ProgramCounter:
		v, ok := x.(int)
		if !ok {
			t.Fatalf("assert failed (program counter must be compared with int)")
		}
		if int(r.Address()) != v {
			t.Errorf("assert ProgramCounter failed (%#04x - wanted %#04x)", r.Address(), v)
		}

	case registers.StatusRegister:
		switch v := x.(type) {
		case int:
			if int(r.Value()) != v {
				t.Errorf("assert StatusRegister failed (%#02x - wanted %#02x)", r.Value(), v)
			}
		case string:
			if r.String() != v {
				t.Errorf("assert StatusRegister failed (%s - wanted %s)", r.String(), v)
			}
		default:
			t.Fatalf("assert failed (status register must be compared with int or string)")
		}

	default:
		t.Fatalf("assert failed (unknown type %T)", r)
	}
}
