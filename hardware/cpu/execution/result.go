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

// Package execution tracks the result of instruction execution on the CPU.
// The Result type stores detailed information about each instruction
// encountered during a program execution on the CPU. A Result can then be
// used to produce output for disassemblers and debuggers with the help of
// the disassembly package.
package execution

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Interrupt identifies the interrupt sequence, if any, that was executed in
// place of an instruction.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	NMI
	IRQ
	Reset
)

func (i Interrupt) String() string {
	switch i {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	case Reset:
		return "RESET"
	}
	return ""
}

// Result records the state/result of the most recently executed instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a nil Defn indicates that an interrupt sequence was executed rather
	// than an instruction
	Defn *instructions.Definition

	// the operand bytes of the instruction, in little endian order
	InstructionData uint16

	// the effective address of the instruction, if it has one
	EffectiveAddress uint16

	// the number of cycles the instruction took, including penalties
	Cycles int

	// whether an extra cycle was required because of a page crossing
	PageFault bool

	// whether the branch condition was met
	BranchSuccess bool

	Interrupt Interrupt
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		if r.Interrupt != NoInterrupt {
			return fmt.Sprintf("%04x %s (%d cycles)", r.Address, r.Interrupt, r.Cycles)
		}
		return "no instruction"
	}

	s := fmt.Sprintf("%04x %s %s (%d cycles)", r.Address, r.Defn.Mnemonic(), r.Defn.AddressingMode, r.Cycles)
	if r.PageFault {
		s = fmt.Sprintf("%s [page fault]", s)
	}
	if r.Defn.IsBranch() && r.BranchSuccess {
		s = fmt.Sprintf("%s [branch taken]", s)
	}
	return s
}
