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

	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// State is the state of the console at an instruction boundary.
type State struct {
	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	P  uint8
	SP uint8

	Scanline int
	Dot      int
	Cycles   uint64
}

// Snapshot returns the current state of the console.
func Snapshot(nes *hardware.NES) State {
	return State{
		PC:       nes.CPU.PC.Address(),
		A:        nes.CPU.A.Value(),
		X:        nes.CPU.X.Value(),
		Y:        nes.CPU.Y.Value(),
		P:        nes.CPU.Status.Value(),
		SP:       nes.CPU.SP.Value(),
		Scanline: nes.PPU.Scanline(),
		Dot:      nes.PPU.Dot(),
		Cycles:   nes.Cycles(),
	}
}

// zero page pointers wrap around inside the zero page.
func peekZeroPage16(mem Peeker, address uint8) uint16 {
	return uint16(mem.Peek(uint16(address+1)))<<8 | uint16(mem.Peek(uint16(address)))
}

// annotation returns the operand of the entry with the addresses and values
// it refers to, as they are before the instruction is executed.
func annotation(mem Peeker, e Entry, st State) string {
	op := e.Operand()

	switch e.Defn.AddressingMode {
	case instructions.ZeroPage:
		return fmt.Sprintf("%s = %02X", op, mem.Peek(uint16(e.operand8())))

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		idx := st.X
		if e.Defn.AddressingMode == instructions.ZeroPageIndexedY {
			idx = st.Y
		}
		address := e.operand8() + idx
		return fmt.Sprintf("%s @ %02X = %02X", op, address, mem.Peek(uint16(address)))

	case instructions.Absolute:
		if e.Defn.Operator == instructions.Jmp || e.Defn.Operator == instructions.Jsr {
			return op
		}
		return fmt.Sprintf("%s = %02X", op, mem.Peek(e.operand16()))

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		idx := st.X
		if e.Defn.AddressingMode == instructions.AbsoluteIndexedY {
			idx = st.Y
		}
		address := e.operand16() + uint16(idx)
		return fmt.Sprintf("%s @ %04X = %02X", op, address, mem.Peek(address))

	case instructions.Indirect:
		// the high byte of the pointer is not carried into when the low
		// byte of the pointer is 0xff
		ptr := e.operand16()
		hi := ptr&0xff00 | (ptr+1)&0x00ff
		target := uint16(mem.Peek(hi))<<8 | uint16(mem.Peek(ptr))
		return fmt.Sprintf("%s = %04X", op, target)

	case instructions.IndexedIndirect:
		ptr := e.operand8() + st.X
		address := peekZeroPage16(mem, ptr)
		return fmt.Sprintf("%s @ %02X = %04X = %02X", op, ptr, address, mem.Peek(address))

	case instructions.IndirectIndexed:
		base := peekZeroPage16(mem, e.operand8())
		address := base + uint16(st.Y)
		return fmt.Sprintf("%s = %04X @ %04X = %02X", op, base, address, mem.Peek(address))
	}

	return op
}

// TraceLine returns the nestest.log style line for the instruction about to
// be executed.
func TraceLine(mem Peeker, st State) string {
	e := Decode(mem, st.PC)

	marker := ' '
	if e.Defn.Undocumented {
		marker = '*'
	}

	instruction := e.Mnemonic()
	if op := annotation(mem, e, st); op != "" {
		instruction = fmt.Sprintf("%s %s", instruction, op)
	}

	return fmt.Sprintf("%04X  %-8s %c%-31s A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d",
		st.PC, e.Bytecode(), marker, instruction,
		st.A, st.X, st.Y, st.P, st.SP,
		st.Scanline, st.Dot, st.Cycles)
}

// WriteTrace steps the console for the number of instructions, writing a
// trace line to the writer before each one. A count of less than one will
// trace until the console returns an error.
func WriteTrace(w io.Writer, nes *hardware.NES, count int) error {
	for i := 0; count < 1 || i < count; i++ {
		if _, err := fmt.Fprintln(w, TraceLine(nes.Mem, Snapshot(nes))); err != nil {
			return err
		}
		if err := nes.Step(); err != nil {
			return err
		}
	}
	return nil
}
