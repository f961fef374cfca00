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

import "fmt"

// Register is one of the 8 bit registers of the 2A03: A, X, Y or SP.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{label: label, value: val}
}

// Label is the name of the register as used in a disassembly.
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address is the value of the register widened to 16 bits. The index
// registers are added to addresses in this form.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative is bit 7 of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 != 0
}

// IsZero is true if the register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV is bit 6 of the register. The BIT instruction copies it into the
// overflow flag.
func (r Register) IsBitV() bool {
	return r.value&0x40 != 0
}

// Load a new value into the register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add val and the carry to the register. The 2A03 has no decimal mode so the
// addition is always binary. The returned carry is bit 8 of the sum. Overflow
// is set if the sign of the result differs from the sign of both operands.
func (r *Register) Add(val uint8, carry bool) (bool, bool) {
	sum := uint16(r.value) + uint16(val)
	if carry {
		sum++
	}
	result := uint8(sum)
	overflow := (r.value^result)&(val^result)&0x80 != 0
	r.value = result
	return sum&0x100 != 0, overflow
}

// Subtract val from the register. The carry is the inverse of the borrow
// both on entry and on return.
func (r *Register) Subtract(val uint8, carry bool) (bool, bool) {
	return r.Add(^val, carry)
}

// AND the register with val.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR the register with val.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ORA the register with val.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// ASL shifts the register left. Bit 7 is shifted out and returned.
func (r *Register) ASL() bool {
	return r.ROL(false)
}

// LSR shifts the register right. Bit 0 is shifted out and returned.
func (r *Register) LSR() bool {
	return r.ROR(false)
}

// ROL shifts the register left with the carry shifted into bit 0. Bit 7 is
// shifted out and returned.
func (r *Register) ROL(carry bool) bool {
	out := r.value&0x80 != 0
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return out
}

// ROR shifts the register right with the carry shifted into bit 7. Bit 0 is
// shifted out and returned.
func (r *Register) ROR(carry bool) bool {
	out := r.value&0x01 != 0
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return out
}
