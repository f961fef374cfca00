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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers/assert"
	"github.com/jetsetilly/gophernes/hardware/state"
	"github.com/jetsetilly/gophernes/test"
)

const origin = uint16(0x0600)

type write struct {
	address uint16
	data    uint8
}

type mockMem struct {
	internal []uint8
	writes   []write
}

func newMockMem() *mockMem {
	mem := &mockMem{
		internal: make([]uint8, 0x10000),
	}

	// reset vector points to origin. NMI vector to 0x0700. IRQ vector to
	// 0x0800
	mem.internal[0xfffa] = 0x00
	mem.internal[0xfffb] = 0x07
	mem.internal[0xfffc] = uint8(origin & 0xff)
	mem.internal[0xfffd] = uint8(origin >> 8)
	mem.internal[0xfffe] = 0x00
	mem.internal[0xffff] = 0x08

	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %04x)", mem.internal[address], value, address)
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.writes = append(mem.writes, write{address: address, data: data})
	mem.internal[address] = data
}

func newCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)
	test.DemandEquality(t, mc.PowerOn(), 7)
	assert.Assert(t, mc.PC, int(origin))
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	return mc.ExecuteInstruction()
}

func TestPowerOn(t *testing.T) {
	mc, _ := newCPU(t)
	assert.Assert(t, mc.SP, 0xfd)
	assert.Assert(t, mc.Status, 0x24)
	assert.Assert(t, mc.Status, "sv-bdIzc")
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.Reset)

	// a reset after power-on decrements the stack pointer again
	mc.Reset()
	assert.Assert(t, mc.SP, 0xfa)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newCPU(t)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	assert.Assert(t, mc.Status, "sv-bdIzC")
	step(t, mc) // CLC
	assert.Assert(t, mc.Status, "sv-bdIzc")
	step(t, mc) // CLI
	assert.Assert(t, mc.Status, "sv-bdizc")
	step(t, mc) // SEI
	assert.Assert(t, mc.Status, "sv-bdIzc")
	step(t, mc) // SED
	assert.Assert(t, mc.Status, "sv-bDIzc")
	step(t, mc) // CLD
	assert.Assert(t, mc.Status, "sv-bdIzc")
	mc.Status.Overflow = true
	step(t, mc) // CLV
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestStack(t *testing.T) {
	mc, mem := newCPU(t)

	// SEC; PHP; CLC; PLP; LDA #$00; PHA; LDA #$ff; PLA
	mem.putInstructions(origin, 0x38, 0x08, 0x18, 0x28, 0xa9, 0x00, 0x48, 0xa9, 0xff, 0x68)
	step(t, mc) // SEC
	step(t, mc) // PHP
	assert.Assert(t, mc.SP, 0xfc)

	// the break bit is set in the pushed copy of the status register
	mem.assert(t, 0x01fd, 0x35)

	step(t, mc) // CLC
	step(t, mc) // PLP
	assert.Assert(t, mc.SP, 0xfd)
	assert.Assert(t, mc.Status, "sv-bdIzC")

	step(t, mc) // LDA #$00
	step(t, mc) // PHA
	mem.assert(t, 0x01fd, 0x00)
	step(t, mc) // LDA #$ff
	assert.Assert(t, mc.Status, "Sv-bdIzC")
	step(t, mc) // PLA
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.Status, "sv-bdIZC")
}

func TestLoadAndTransferFlags(t *testing.T) {
	mc, mem := newCPU(t)

	flags := func(v uint8) {
		t.Helper()
		test.ExpectEquality(t, mc.Status.Zero, v == 0, v)
		test.ExpectEquality(t, mc.Status.Sign, v&0x80 == 0x80, v)
	}

	for v := 0; v <= 0xff; v++ {
		mc.PC.Load(origin)
		b := uint8(v)

		// LDA #v; TAX; TAY; LDA #$01; TXA; LDX #v; LDY #v; TYA; TXS; TSX
		mem.putInstructions(origin, 0xa9, b, 0xaa, 0xa8, 0xa9, 0x01, 0x8a,
			0xa2, b, 0xa0, b, 0x98, 0x9a, 0xba)

		step(t, mc) // LDA
		flags(b)
		step(t, mc) // TAX
		assert.Assert(t, mc.X, v)
		flags(b)
		step(t, mc) // TAY
		assert.Assert(t, mc.Y, v)
		flags(b)
		step(t, mc) // LDA #$01
		step(t, mc) // TXA
		assert.Assert(t, mc.A, v)
		flags(b)
		step(t, mc) // LDX
		flags(b)
		step(t, mc) // LDY
		flags(b)
		step(t, mc) // TYA
		flags(b)
		step(t, mc) // TXS
		assert.Assert(t, mc.SP, v)
		step(t, mc) // TSX
		flags(b)
	}
}

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$50; ADC #$50
	mem.putInstructions(origin, 0xa9, 0x50, 0x69, 0x50)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0xa0)
	assert.Assert(t, mc.Status, "SV-bdIzc")

	// SEC; LDA #$05; SBC #$06
	mc.PC.Load(origin)
	mem.putInstructions(origin, 0x38, 0xa9, 0x05, 0xe9, 0x06)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0xff)
	assert.Assert(t, mc.Status, "Sv-bdIzc")

	// decimal mode has no effect on the 2A03
	// SED; CLC; LDA #$09; ADC #$01
	mc.PC.Load(origin)
	mem.putInstructions(origin, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x0a)
}

func TestCompareAndBit(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$10; CMP #$10; CMP #$11; CMP #$0f
	mem.putInstructions(origin, 0xa9, 0x10, 0xc9, 0x10, 0xc9, 0x11, 0xc9, 0x0f)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.Status, "sv-bdIZC")
	step(t, mc)
	assert.Assert(t, mc.Status, "Sv-bdIzc")
	step(t, mc)
	assert.Assert(t, mc.Status, "sv-bdIzC")

	// BIT $20 with $20 containing 0xc0 and A containing 0x10
	mem.internal[0x20] = 0xc0
	mc.PC.Load(origin)
	mem.putInstructions(origin, 0x24, 0x20)
	step(t, mc)
	assert.Assert(t, mc.Status, "SV-bdIZC")
}

func TestBranchTiming(t *testing.T) {
	mc, mem := newCPU(t)

	// not taken
	mc.Status.Zero = true
	mem.putInstructions(origin, 0xd0, 0x02)
	test.ExpectEquality(t, step(t, mc), 2)
	assert.Assert(t, mc.PC, 0x0602)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)

	// taken without a page crossing costs one extra cycle
	mc.Status.Zero = false
	mc.PC.Load(origin)
	test.ExpectEquality(t, step(t, mc), 3)
	assert.Assert(t, mc.PC, 0x0604)
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)

	// taken with a page crossing costs two extra cycles
	mem.putInstructions(0x06f0, 0xd0, 0x7f)
	mc.PC.Load(0x06f0)
	test.ExpectEquality(t, step(t, mc), 4)
	assert.Assert(t, mc.PC, 0x0771)

	// backwards into the previous page
	mem.putInstructions(origin, 0xd0, 0xf0)
	mc.PC.Load(origin)
	test.ExpectEquality(t, step(t, mc), 4)
	assert.Assert(t, mc.PC, 0x05f2)
}

func TestPageCrossPenalty(t *testing.T) {
	mc, mem := newCPU(t)

	// LDX #$01; LDA $0600,X; LDA $06ff,X; STA $0600,X; STA $06ff,X
	mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0x00, 0x06, 0xbd, 0xff, 0x06,
		0x9d, 0x00, 0x06, 0x9d, 0xff, 0x06)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// writes always take the extra cycle
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, step(t, mc), 5)
}

func TestSubroutines(t *testing.T) {
	mc, mem := newCPU(t)

	// JSR $0700 ... RTS
	mem.putInstructions(origin, 0x20, 0x00, 0x07)
	mem.putInstructions(0x0700, 0x60)
	test.ExpectEquality(t, step(t, mc), 6)
	assert.Assert(t, mc.PC, 0x0700)
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x02)
	test.ExpectEquality(t, step(t, mc), 6)
	assert.Assert(t, mc.PC, 0x0603)
	assert.Assert(t, mc.SP, 0xfd)
}

func TestJumpIndirectBug(t *testing.T) {
	mc, mem := newCPU(t)

	// JMP ($02ff) reads the high byte from $0200 rather than $0300
	mem.internal[0x02ff] = 0x34
	mem.internal[0x0200] = 0x12
	mem.internal[0x0300] = 0x56
	mem.putInstructions(origin, 0x6c, 0xff, 0x02)
	test.ExpectEquality(t, step(t, mc), 5)
	assert.Assert(t, mc.PC, 0x1234)
}

func TestBreakAndReturn(t *testing.T) {
	mc, mem := newCPU(t)

	// BRK; padding ... RTI
	mem.putInstructions(origin, 0x00, 0xff)
	mem.putInstructions(0x0800, 0x40)
	test.ExpectEquality(t, step(t, mc), 7)
	assert.Assert(t, mc.PC, 0x0800)
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x34)

	test.ExpectEquality(t, step(t, mc), 6)
	assert.Assert(t, mc.PC, 0x0602)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestInterrupts(t *testing.T) {
	mc, mem := newCPU(t)

	// NOP; NOP; CLI; NOP
	mem.putInstructions(origin, 0xea, 0xea, 0x58, 0xea)

	// NMI is serviced regardless of the interrupt disable flag
	mc.TriggerNMI()
	test.ExpectSuccess(t, mc.PendingNMI())
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NMI)
	test.ExpectFailure(t, mc.PendingNMI())
	assert.Assert(t, mc.PC, 0x0700)
	assert.Assert(t, mc.SP, 0xfa)

	// the break bit is clear in the status pushed by an interrupt
	mem.assert(t, 0x01fb, 0x24)

	// IRQ is ignored while the interrupt disable flag is set
	mc.PC.Load(origin)
	mc.SetIRQ(true)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	assert.Assert(t, mc.PC, 0x0601)

	// IRQ takes priority over a pending NMI once interrupts are enabled
	step(t, mc) // NOP
	step(t, mc) // CLI
	mc.TriggerNMI()
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.IRQ)
	assert.Assert(t, mc.PC, 0x0800)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// the NMI is still pending and is serviced next
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NMI)
	assert.Assert(t, mc.PC, 0x0700)
}

func TestNotReady(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(origin, 0xea)

	mc.RdyFlg = false
	mc.TriggerNMI()
	test.ExpectEquality(t, step(t, mc), 1)
	assert.Assert(t, mc.PC, int(origin))

	// the NMI is not lost while the CPU is halted
	test.ExpectSuccess(t, mc.PendingNMI())
	mc.RdyFlg = true
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NMI)
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := newCPU(t)

	// INC $10
	mem.internal[0x10] = 0x05
	mem.putInstructions(origin, 0xe6, 0x10)
	mem.writes = mem.writes[:0]
	test.ExpectEquality(t, step(t, mc), 5)

	// the unmodified value is written before the result
	test.DemandEquality(t, len(mem.writes), 2)
	test.ExpectEquality(t, mem.writes[0], write{address: 0x10, data: 0x05})
	test.ExpectEquality(t, mem.writes[1], write{address: 0x10, data: 0x06})

	// ASL A does not touch memory
	mc.PC.Load(origin)
	mem.putInstructions(origin, 0xa9, 0x81, 0x0a)
	mem.writes = mem.writes[:0]
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, len(mem.writes), 0)
	assert.Assert(t, mc.A, 0x02)
	assert.Assert(t, mc.Status, "sv-bdIzC")
}

func TestUndocumented(t *testing.T) {
	mc, mem := newCPU(t)

	run := func(a, x uint8, carry bool, m uint8, program ...uint8) {
		t.Helper()
		mc.PC.Load(origin)
		mc.A.Load(a)
		mc.X.Load(x)
		mc.Status.Carry = carry
		mem.internal[0x10] = m
		mem.putInstructions(origin, program...)
		step(t, mc)
	}

	// LAX $10
	run(0, 0, false, 0x80, 0xa7, 0x10)
	assert.Assert(t, mc.A, 0x80)
	assert.Assert(t, mc.X, 0x80)
	test.ExpectSuccess(t, mc.Status.Sign)

	// SAX $10
	run(0xf0, 0x3c, false, 0, 0x87, 0x10)
	mem.assert(t, 0x10, 0x30)

	// DCP $10
	run(0x0f, 0, false, 0x10, 0xc7, 0x10)
	mem.assert(t, 0x10, 0x0f)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)

	// ISC $10
	run(0x20, 0, true, 0x0f, 0xe7, 0x10)
	mem.assert(t, 0x10, 0x10)
	assert.Assert(t, mc.A, 0x10)
	test.ExpectSuccess(t, mc.Status.Carry)

	// SLO $10
	run(0x01, 0, false, 0x81, 0x07, 0x10)
	mem.assert(t, 0x10, 0x02)
	assert.Assert(t, mc.A, 0x03)
	test.ExpectSuccess(t, mc.Status.Carry)

	// RLA $10
	run(0x03, 0, false, 0x81, 0x27, 0x10)
	mem.assert(t, 0x10, 0x02)
	assert.Assert(t, mc.A, 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)

	// SRE $10
	run(0x03, 0, false, 0x03, 0x47, 0x10)
	mem.assert(t, 0x10, 0x01)
	assert.Assert(t, mc.A, 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)

	// RRA $10
	run(0x01, 0, true, 0x02, 0x67, 0x10)
	mem.assert(t, 0x10, 0x81)
	assert.Assert(t, mc.A, 0x82)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	// ANC #$80
	run(0xff, 0, false, 0, 0x0b, 0x80)
	assert.Assert(t, mc.A, 0x80)
	test.ExpectSuccess(t, mc.Status.Carry)

	// ALR #$03
	run(0xff, 0, false, 0, 0x4b, 0x03)
	assert.Assert(t, mc.A, 0x01)
	test.ExpectSuccess(t, mc.Status.Carry)

	// ARR #$ff
	run(0xc0, 0, true, 0, 0x6b, 0xff)
	assert.Assert(t, mc.A, 0xe0)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Overflow)

	// AXS #$01
	run(0x0f, 0xf3, false, 0, 0xcb, 0x01)
	assert.Assert(t, mc.X, 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)

	// SBC #$01 (undocumented opcode 0xeb)
	run(0x05, 0, true, 0, 0xeb, 0x01)
	assert.Assert(t, mc.A, 0x04)
}

func TestKIL(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(origin, 0x02)
	step(t, mc)
	test.ExpectSuccess(t, mc.Killed)

	// the CPU stays jammed until reset
	pc := mc.PC.Address()
	test.ExpectEquality(t, step(t, mc), 1)
	assert.Assert(t, mc.PC, int(pc))

	mc.Reset()
	test.ExpectFailure(t, mc.Killed)
}

func TestSaveState(t *testing.T) {
	mc, _ := newCPU(t)
	mc.A.Load(0x11)
	mc.X.Load(0x22)
	mc.Y.Load(0x33)
	mc.Status.Carry = true
	mc.TriggerNMI()

	enc := state.NewEncoder()
	mc.SaveState(enc)

	other, _ := newCPU(t)
	dec := state.NewDecoder(enc.Data())
	other.LoadState(dec)
	test.DemandSuccess(t, dec.Err())

	test.ExpectEquality(t, other.String(), mc.String())
	test.ExpectSuccess(t, other.PendingNMI())
}
