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
	"strings"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Peeker is implemented by memory that can be read without side effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// Entry is a single decoded instruction.
type Entry struct {
	Address uint16
	Defn    *instructions.Definition

	// the opcode followed by the operand bytes
	Bytes []uint8
}

// Decode the instruction at the address.
func Decode(mem Peeker, address uint16) Entry {
	opcode := mem.Peek(address)
	e := Entry{
		Address: address,
		Defn:    &instructions.Definitions[opcode],
	}
	for i := 0; i < e.Defn.Bytes; i++ {
		e.Bytes = append(e.Bytes, mem.Peek(address+uint16(i)))
	}
	return e
}

// Next returns the address of the instruction that follows the entry in
// memory.
func (e Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytes))
}

// Bytecode returns the bytes of the instruction as space separated hex
// values.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(s, " ")
}

// Mnemonic returns the three letter mnemonic of the instruction.
func (e Entry) Mnemonic() string {
	// ISC is more commonly known as ISB
	if e.Defn.Operator == instructions.Isc {
		return "ISB"
	}
	return e.Defn.Mnemonic()
}

func (e Entry) operand8() uint8 {
	if len(e.Bytes) < 2 {
		return 0
	}
	return e.Bytes[1]
}

func (e Entry) operand16() uint16 {
	if len(e.Bytes) < 3 {
		return uint16(e.operand8())
	}
	return uint16(e.Bytes[2])<<8 | uint16(e.Bytes[1])
}

// Operand returns the operand in standard assembler syntax. Relative operands
// are shown as the branch target.
func (e Entry) Operand() string {
	switch e.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", e.operand8())
	case instructions.Relative:
		return fmt.Sprintf("$%04X", e.Next()+uint16(int8(e.operand8())))
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", e.operand8())
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", e.operand8())
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", e.operand8())
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", e.operand16())
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", e.operand16())
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", e.operand16())
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", e.operand16())
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", e.operand8())
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", e.operand8())
	}
	return ""
}

func (e Entry) String() string {
	s := fmt.Sprintf("%04X  %-8s  %s", e.Address, e.Bytecode(), e.Mnemonic())
	if op := e.Operand(); op != "" {
		s = fmt.Sprintf("%s %s", s, op)
	}
	if e.Defn.Undocumented {
		s = fmt.Sprintf("%s (undocumented)", s)
	}
	return s
}
