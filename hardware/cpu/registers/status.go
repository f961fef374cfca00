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

package registers

// StatusRegister holds the processor flags of the 2A03 as separate fields.
//
// Neither the break flag nor bit 5 exist in the processor. They only appear
// in the copy of the status that is pushed to the stack. Break is kept here so
// that a value loaded with FromValue() can be inspected, but Pulled() always
// clears it.
//
// The decimal flag can be set and cleared but has no effect on the 2A03.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// bit masks in the order the flags appear in the value of the register. the
// unused bit 5 is the zero mask.
var statusBits = [8]uint8{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}

const statusLetters = "SV-BDIZC"

func (sr *StatusRegister) flags() [8]*bool {
	return [8]*bool{&sr.Sign, &sr.Overflow, nil, &sr.Break, &sr.DecimalMode, &sr.InterruptDisable, &sr.Zero, &sr.Carry}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String shows set flags as upper case letters and clear flags as lower case.
func (sr StatusRegister) String() string {
	s := []byte(statusLetters)
	for i, f := range sr.flags() {
		if f != nil && !*f {
			s[i] += 'a' - 'A'
		}
	}
	return string(s)
}

// Reset clears every flag.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value of the register as an 8 bit number. Bit 5 is always set.
func (sr StatusRegister) Value() uint8 {
	v := uint8(0x20)
	for i, f := range sr.flags() {
		if f != nil && *f {
			v |= statusBits[i]
		}
	}
	return v
}

// Pushed is the value written to the stack. The break bit is set by BRK and
// PHP but not by NMI or IRQ.
func (sr StatusRegister) Pushed(brk bool) uint8 {
	v := sr.Value() &^ 0x10
	if brk {
		v |= 0x10
	}
	return v
}

// FromValue sets every flag from an 8 bit number.
func (sr *StatusRegister) FromValue(v uint8) {
	for i, f := range sr.flags() {
		if f != nil {
			*f = v&statusBits[i] != 0
		}
	}
}

// Pulled sets the flags from a value taken from the stack by PLP or RTI.
func (sr *StatusRegister) Pulled(v uint8) {
	sr.FromValue(v &^ 0x10)
}
