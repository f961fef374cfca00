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

package cpu

import (
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// EffectiveAddress resolves the operand of an instruction to the address that
// the instruction operates on. The operand argument is the address of the
// first byte after the opcode. The read function is used to fetch operand
// bytes and pointers; it can be a side-effect free peek function when the
// result is for display purposes only.
//
// The pageCrossed return value is true if, and only if, the high byte of the
// base address differs from the high byte of the final address. For the
// Relative mode the base address is the address of the next instruction.
//
// Implied and Accumulator modes have no effective address and return zero.
func EffectiveAddress(read func(uint16) uint8, mode instructions.AddressingMode, operand uint16, x uint8, y uint8) (address uint16, pageCrossed bool) {
	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return 0, false

	case instructions.Immediate:
		return operand, false

	case instructions.Relative:
		base := operand + 1
		address = base + uint16(int8(read(operand)))
		return address, base&0xff00 != address&0xff00

	case instructions.ZeroPage:
		return uint16(read(operand)), false

	case instructions.ZeroPageIndexedX:
		return uint16(read(operand) + x), false

	case instructions.ZeroPageIndexedY:
		return uint16(read(operand) + y), false

	case instructions.Absolute:
		return read16(read, operand), false

	case instructions.AbsoluteIndexedX:
		base := read16(read, operand)
		address = base + uint16(x)
		return address, base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedY:
		base := read16(read, operand)
		address = base + uint16(y)
		return address, base&0xff00 != address&0xff00

	case instructions.Indirect:
		// the high byte of the pointer is not incremented when the low byte
		// of the pointer is 0xff. the second byte is read from the start of
		// the same page
		ptr := read16(read, operand)
		lo := read(ptr)
		hi := read((ptr & 0xff00) | uint16(uint8(ptr)+1))
		return uint16(hi)<<8 | uint16(lo), false

	case instructions.IndexedIndirect:
		zp := read(operand) + x
		lo := read(uint16(zp))
		hi := read(uint16(zp + 1))
		return uint16(hi)<<8 | uint16(lo), false

	case instructions.IndirectIndexed:
		zp := read(operand)
		lo := read(uint16(zp))
		hi := read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		address = base + uint16(y)
		return address, base&0xff00 != address&0xff00
	}

	return 0, false
}

func read16(read func(uint16) uint8, address uint16) uint16 {
	lo := read(address)
	hi := read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}
