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
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/state"
	"github.com/jetsetilly/gophernes/logger"
)

// Interrupt vectors.
const (
	NMIVector   = uint16(0xfffa)
	ResetVector = uint16(0xfffc)
	IRQVector   = uint16(0xfffe)
)

// the number of cycles taken by an interrupt sequence.
const interruptCycles = 7

// the stack is always in page one.
const stackPage = uint16(0x0100)

// CPU implements the 2A03 as found in the NES. The 2A03 is a 6502 without the
// decimal mode circuitry. Register logic is implemented by the Register type in
// the registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem cpubus.Memory

	// RdyFlg is false when the bus has halted the CPU for DMA. instructions
	// are not fetched while it is false but pending interrupts are kept
	RdyFlg bool

	// the NMI line is edge triggered. nmiPending is set on the edge and is
	// cleared when the NMI sequence starts
	nmiPending bool

	// the IRQ line is level triggered and is set by the bus every cycle
	irqLine bool

	// LastResult describes the most recently executed instruction or
	// interrupt sequence
	LastResult execution.Result

	// the cpu has encountered a KIL instruction. requires a Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(instance *instance.Instance, mem cpubus.Memory) *CPU {
	return &CPU{
		instance: instance,
		mem:      mem,
		PC:       registers.NewProgramCounter(0),
		A:        registers.NewRegister(0, "A"),
		X:        registers.NewRegister(0, "X"),
		Y:        registers.NewRegister(0, "Y"),
		SP:       registers.NewRegister(0, "SP"),
		RdyFlg:   true,
	}
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset performs the RESET sequence. The program counter is loaded from the
// reset vector, the interrupt disable flag is set and the stack pointer is
// decremented by three without anything being written to the stack. A and the
// index registers are cleared, as on power-on.
//
// Returns the number of cycles taken by the sequence.
func (mc *CPU) Reset() int {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Interrupt = execution.Reset
	mc.LastResult.Cycles = interruptCycles

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(mc.SP.Value() - 3)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true

	mc.nmiPending = false
	mc.irqLine = false
	mc.Killed = false
	mc.RdyFlg = true

	mc.PC.Load(mc.read16(ResetVector))

	return interruptCycles
}

// PowerOn puts the CPU into the state it is in after power is first applied
// and then performs the RESET sequence. Returns the number of cycles taken by
// the RESET sequence.
func (mc *CPU) PowerOn() int {
	mc.SP.Load(0)
	return mc.Reset()
}

// TriggerNMI latches the NMI edge. The NMI sequence will start before the
// next instruction is fetched.
func (mc *CPU) TriggerNMI() {
	mc.nmiPending = true
}

// SetIRQ sets the state of the IRQ line. The line is level triggered and is
// only acted upon when the interrupt disable flag is clear.
func (mc *CPU) SetIRQ(asserted bool) {
	mc.irqLine = asserted
}

// PendingNMI returns true if an NMI edge has been latched but the NMI
// sequence has not yet started.
func (mc *CPU) PendingNMI() bool {
	return mc.nmiPending
}

// IRQLine returns the current state of the IRQ line.
func (mc *CPU) IRQLine() bool {
	return mc.irqLine
}

func (mc *CPU) read(address uint16) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.mem.Write(address, data)
}

func (mc *CPU) read16(address uint16) uint16 {
	return read16(mc.mem.Read, address)
}

func (mc *CPU) push(data uint8) {
	mc.write(stackPage|mc.SP.Address(), data)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read(stackPage | mc.SP.Address())
}

func (mc *CPU) push16(data uint16) {
	mc.push(uint8(data >> 8))
	mc.push(uint8(data))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) setZN(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

func (mc *CPU) compare(r registers.Register, v uint8) {
	mc.Status.Carry = r.Value() >= v
	mc.setZN(r.Value() - v)
}

// interrupt pushes the program counter and status register to the stack and
// loads the program counter from the vector.
func (mc *CPU) interrupt(vector uint16, brk bool) {
	mc.push16(mc.PC.Address())
	mc.push(mc.Status.Pushed(brk))
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16(vector))
}

// ExecuteInstruction steps the CPU forward by one instruction, or by one
// interrupt sequence if an interrupt is pending. The instruction is executed
// completely, all memory accesses happening immediately.
//
// Returns the number of cycles taken, including penalties for page crossings
// and taken branches. The bus is responsible for spreading the effect of the
// instruction over that many cycles.
//
// Interrupts are checked before the opcode is fetched. A pending IRQ is
// serviced if the interrupt disable flag is clear, then a pending NMI.
func (mc *CPU) ExecuteInstruction() int {
	// a halted or jammed CPU consumes the cycle without doing anything
	if !mc.RdyFlg || mc.Killed {
		return 1
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.irqLine && !mc.Status.InterruptDisable {
		mc.interrupt(IRQVector, false)
		mc.LastResult.Interrupt = execution.IRQ
		mc.LastResult.Cycles = interruptCycles
		return interruptCycles
	}

	if mc.nmiPending {
		mc.nmiPending = false
		mc.interrupt(NMIVector, false)
		mc.LastResult.Interrupt = execution.NMI
		mc.LastResult.Cycles = interruptCycles
		return interruptCycles
	}

	opcode := mc.read(mc.PC.Address())
	defn := &instructions.Definitions[opcode]
	mc.LastResult.Defn = defn

	operand := mc.PC.Address() + 1
	switch defn.Bytes {
	case 2:
		mc.LastResult.InstructionData = uint16(mc.read(operand))
	case 3:
		mc.LastResult.InstructionData = mc.read16(operand)
	}

	address, pageCrossed := EffectiveAddress(mc.read, defn.AddressingMode, operand, mc.X.Value(), mc.Y.Value())
	mc.LastResult.EffectiveAddress = address

	mc.PC.Add(uint16(defn.Bytes))

	cycles := defn.Cycles
	if pageCrossed && defn.PageSensitive && !defn.IsBranch() {
		cycles++
		mc.LastResult.PageFault = true
	}

	cycles += mc.execute(defn, address, pageCrossed)

	mc.LastResult.Cycles = cycles
	return cycles
}

// execute performs the operation of the instruction. returns any additional
// cycles required by branches.
func (mc *CPU) execute(defn *instructions.Definition, address uint16, pageCrossed bool) int {
	// value is the operand value for instructions that read memory. it is not
	// read for write instructions because reading has side effects on some
	// memory mapped registers
	var value uint8
	if defn.AddressingMode == instructions.Accumulator {
		value = mc.A.Value()
	} else if defn.AddressingMode != instructions.Implied {
		switch defn.Effect {
		case instructions.Read, instructions.RMW:
			value = mc.read(address)
		}
	}

	// r is the working register for read-modify-write instructions
	r := registers.NewRegister(value, "")

	// writeback the result of a read-modify-write instruction. the
	// unmodified value is written first, as happens in the hardware
	writeback := func() {
		if defn.AddressingMode == instructions.Accumulator {
			mc.A.Load(r.Value())
			return
		}
		mc.write(address, value)
		mc.write(address, r.Value())
	}

	branch := func(flag bool) int {
		if !flag {
			return 0
		}
		mc.LastResult.BranchSuccess = true
		mc.PC.Load(address)
		if pageCrossed {
			mc.LastResult.PageFault = true
			return 2
		}
		return 1
	}

	switch defn.Operator {
	case instructions.Nop:
		// undocumented NOPs with an operand perform the read and nothing else

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Pha:
		mc.push(mc.A.Value())
	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.setZN(mc.A.Value())
	case instructions.Php:
		mc.push(mc.Status.Pushed(true))
	case instructions.Plp:
		mc.Status.Pulled(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A.Value())
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A.Value())
	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A.Value())
	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(mc.A.Value())
	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(mc.X.Value())
	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(mc.Y.Value())

	case instructions.Sta:
		mc.write(address, mc.A.Value())
	case instructions.Stx:
		mc.write(address, mc.X.Value())
	case instructions.Sty:
		mc.write(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZN(mc.X.Value())
	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZN(mc.Y.Value())
	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZN(mc.X.Value())
	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZN(mc.Y.Value())

	case instructions.Asl:
		mc.Status.Carry = r.ASL()
		mc.setZN(r.Value())
		writeback()
	case instructions.Lsr:
		mc.Status.Carry = r.LSR()
		mc.setZN(r.Value())
		writeback()
	case instructions.Rol:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setZN(r.Value())
		writeback()
	case instructions.Ror:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setZN(r.Value())
		writeback()
	case instructions.Inc:
		r.Add(1, false)
		mc.setZN(r.Value())
		writeback()
	case instructions.Dec:
		r.Add(0xff, false)
		mc.setZN(r.Value())
		writeback()

	case instructions.Adc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.setZN(mc.A.Value())
	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.setZN(mc.A.Value())

	case instructions.Cmp:
		mc.compare(mc.A, value)
	case instructions.Cpx:
		mc.compare(mc.X, value)
	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Overflow = value&0x40 == 0x40
		mc.Status.Sign = value&0x80 == 0x80

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		return branch(!mc.Status.Carry)
	case instructions.Bcs:
		return branch(mc.Status.Carry)
	case instructions.Beq:
		return branch(mc.Status.Zero)
	case instructions.Bne:
		return branch(!mc.Status.Zero)
	case instructions.Bmi:
		return branch(mc.Status.Sign)
	case instructions.Bpl:
		return branch(!mc.Status.Sign)
	case instructions.Bvc:
		return branch(!mc.Status.Overflow)
	case instructions.Bvs:
		return branch(mc.Status.Overflow)

	case instructions.Jsr:
		// the address pushed is the address of the last byte of the JSR
		mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(address)

	case instructions.Rts:
		mc.PC.Load(mc.pull16())
		mc.PC.Add(1)

	case instructions.Brk:
		// BRK is followed by a padding byte which is skipped on return
		mc.PC.Add(1)
		mc.interrupt(IRQVector, true)

	case instructions.Rti:
		mc.Status.Pulled(mc.pull())
		mc.PC.Load(mc.pull16())

	// undocumented instructions

	case instructions.Kil:
		if !mc.Killed {
			mc.Killed = true
			logger.Logf(mc.instance, "cpu", "KIL instruction (%#04x)", mc.LastResult.Address)
		}

	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(value)

	case instructions.Sax:
		mc.write(address, mc.A.Value()&mc.X.Value())

	case instructions.Dcp:
		r.Add(0xff, false)
		writeback()
		mc.compare(mc.A, r.Value())

	case instructions.Isc:
		r.Add(1, false)
		writeback()
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(r.Value(), mc.Status.Carry)
		mc.setZN(mc.A.Value())

	case instructions.Slo:
		mc.Status.Carry = r.ASL()
		writeback()
		mc.A.ORA(r.Value())
		mc.setZN(mc.A.Value())

	case instructions.Rla:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		writeback()
		mc.A.AND(r.Value())
		mc.setZN(mc.A.Value())

	case instructions.Sre:
		mc.Status.Carry = r.LSR()
		writeback()
		mc.A.EOR(r.Value())
		mc.setZN(mc.A.Value())

	case instructions.Rra:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		writeback()
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(r.Value(), mc.Status.Carry)
		mc.setZN(mc.A.Value())

	case instructions.Anc:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign

	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A.Value())

	case instructions.Arr:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry)
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.A.IsBitV()
		mc.Status.Overflow = (mc.A.Value()>>6)&0x01 != (mc.A.Value()>>5)&0x01

	case instructions.Xaa:
		// the real result depends on analogue properties of the chip. this is
		// the most commonly observed behaviour
		mc.A.Load(mc.X.Value() & value)
		mc.setZN(mc.A.Value())

	case instructions.Axs:
		ax := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = ax >= value
		mc.X.Load(ax - value)
		mc.setZN(mc.X.Value())

	case instructions.Las:
		v := value & mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.setZN(v)

	case instructions.Ahx:
		mc.unstableStore(address, mc.Y.Value(), mc.A.Value()&mc.X.Value(), pageCrossed)

	case instructions.Shx:
		mc.unstableStore(address, mc.Y.Value(), mc.X.Value(), pageCrossed)

	case instructions.Shy:
		mc.unstableStore(address, mc.X.Value(), mc.Y.Value(), pageCrossed)

	case instructions.Tas:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		mc.unstableStore(address, mc.Y.Value(), mc.SP.Value(), pageCrossed)
	}

	return 0
}

// unstableStore implements the store part of AHX, SHX, SHY and TAS. The value
// stored is ANDed with the high byte of the base address plus one. When the
// indexing crosses a page the high byte of the effective address is replaced
// by the stored value.
func (mc *CPU) unstableStore(address uint16, index uint8, value uint8, pageCrossed bool) {
	base := address - uint16(index)
	value &= uint8(base>>8) + 1
	if pageCrossed {
		address = uint16(value)<<8 | address&0x00ff
	}
	mc.write(address, value)
}

// SaveState writes the CPU state to the encoder.
func (mc *CPU) SaveState(enc *state.Encoder) {
	enc.Section("CPU")
	enc.Uint16(mc.PC.Address())
	enc.Uint8(mc.A.Value())
	enc.Uint8(mc.X.Value())
	enc.Uint8(mc.Y.Value())
	enc.Uint8(mc.SP.Value())
	enc.Uint8(mc.Status.Value())
	enc.Bool(mc.RdyFlg)
	enc.Bool(mc.nmiPending)
	enc.Bool(mc.irqLine)
	enc.Bool(mc.Killed)
}

// LoadState reads the CPU state from the decoder.
func (mc *CPU) LoadState(dec *state.Decoder) {
	dec.Section("CPU")
	mc.PC.Load(dec.Uint16())
	mc.A.Load(dec.Uint8())
	mc.X.Load(dec.Uint8())
	mc.Y.Load(dec.Uint8())
	mc.SP.Load(dec.Uint8())
	mc.Status.FromValue(dec.Uint8())
	mc.RdyFlg = dec.Bool()
	mc.nmiPending = dec.Bool()
	mc.irqLine = dec.Bool()
	mc.Killed = dec.Bool()
	mc.LastResult.Reset()
}
