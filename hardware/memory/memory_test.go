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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/audio"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/nrom"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/state"
	"github.com/jetsetilly/gophernes/test"
)

// mockPPU records register accesses.
type mockPPU struct {
	registers [8]uint8
	reads     []uint16
}

func (p *mockPPU) ReadRegister(addr uint16) uint8 {
	p.reads = append(p.reads, addr)
	return p.registers[addr&0x07]
}

func (p *mockPPU) WriteRegister(addr uint16, data uint8) {
	p.registers[addr&0x07] = data
}

func (p *mockPPU) PeekRegister(addr uint16) uint8 {
	return p.registers[addr&0x07]
}

func newMemory() (*memory.Memory, *mockPPU, *audio.Silent, *input.Input) {
	p := &mockPPU{}
	a := audio.NewSilent()
	i := input.NewInput()
	return memory.NewMemory(nil, p, a, i), p, a, i
}

func TestInterface(t *testing.T) {
	var mem cpubus.Memory
	mem, _, _, _ = newMemory()
	test.ExpectInequality(t, mem, nil)
}

func TestRAMMirrors(t *testing.T) {
	mem, _, _, _ := newMemory()

	mem.Write(0x0001, 0x11)
	test.ExpectEquality(t, mem.Read(0x0801), uint8(0x11))
	test.ExpectEquality(t, mem.Read(0x1001), uint8(0x11))
	test.ExpectEquality(t, mem.Read(0x1801), uint8(0x11))

	mem.Write(0x1fff, 0x22)
	test.ExpectEquality(t, mem.RAM[0x07ff], uint8(0x22))
}

func TestPPURegisters(t *testing.T) {
	mem, p, _, _ := newMemory()

	mem.Write(0x3ff8, 0x80)
	test.ExpectEquality(t, p.registers[0], uint8(0x80))

	p.registers[2] = 0x90
	test.ExpectEquality(t, mem.Read(0x200a), uint8(0x90))
	test.ExpectEquality(t, len(p.reads), 1)
	test.ExpectEquality(t, p.reads[0], uint16(0x2002))

	// peeking does not touch the read side of the register
	test.ExpectEquality(t, mem.Peek(0x2002), uint8(0x90))
	test.ExpectEquality(t, len(p.reads), 1)
}

func TestOpenBus(t *testing.T) {
	mem, _, _, _ := newMemory()

	// no cartridge
	mem.Write(0x0000, 0x5a)
	mem.Read(0x0000)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x5a))
	test.ExpectEquality(t, mem.Read(0x4018), uint8(0x5a))

	// write only APU registers
	test.ExpectEquality(t, mem.Read(0x4000), uint8(0x5a))
	test.ExpectEquality(t, mem.Read(0x4014), uint8(0x5a))
}

func TestControllers(t *testing.T) {
	mem, _, _, inp := newMemory()
	test.DemandSuccess(t, inp.HandleInputEvent(input.Event{Port: 1, Button: input.A | input.Select, Pressed: true}))

	mem.Write(0x4016, 0x01)
	mem.Write(0x4016, 0x00)

	// upper bits are open bus. the last value on the bus is the high byte of
	// the address when reading with an absolute instruction
	mem.LastData = 0x40
	test.ExpectEquality(t, mem.Read(0x4017), uint8(0x41))
	mem.LastData = 0x40
	test.ExpectEquality(t, mem.Read(0x4017), uint8(0x40))
	mem.LastData = 0x40
	test.ExpectEquality(t, mem.Peek(0x4017), uint8(0x41))
	test.ExpectEquality(t, mem.Read(0x4017), uint8(0x41))
}

func TestAudioRegisters(t *testing.T) {
	mem, _, a, _ := newMemory()

	mem.Write(0x4000, 0x30)
	mem.Write(0x4017, 0x40)
	test.ExpectEquality(t, a.Register(0x4000), uint8(0x30))
	test.ExpectEquality(t, a.Register(0x4017), uint8(0x40))
}

func TestDMARequest(t *testing.T) {
	mem, _, _, _ := newMemory()

	_, ok := mem.DMARequest()
	test.ExpectFailure(t, ok)

	mem.Write(0x4014, 0x02)
	page, ok := mem.DMARequest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, page, uint8(0x02))

	_, ok = mem.DMARequest()
	test.ExpectFailure(t, ok)
}

func TestCartridge(t *testing.T) {
	mem, _, _, _ := newMemory()

	img := &mapper.Image{
		PRGROM: make([]uint8, 0x4000),
		CHR:    make([]uint8, 0x2000),
		PRGRAM: make([]uint8, 0x2000),
	}
	img.PRGROM[0x3ffc] = 0x00
	img.PRGROM[0x3ffd] = 0x80
	mem.Plumb(nrom.NewNROM(img))

	// 16k of PRG is mirrored
	test.ExpectEquality(t, mem.Read(cpu.ResetVector+1), uint8(0x80))
	test.ExpectEquality(t, mem.Read(0xbffd), uint8(0x80))

	mem.Write(0x6000, 0x99)
	test.ExpectEquality(t, mem.Read(0x6000), uint8(0x99))

	test.DemandSuccess(t, mem.Poke(0x6001, 0x98))
	test.ExpectEquality(t, mem.Peek(0x6001), uint8(0x98))
	test.DemandSuccess(t, mem.Poke(0x0100, 0x97))
	test.ExpectEquality(t, mem.Peek(0x0900), uint8(0x97))

	err := mem.Poke(0x8000, 0x00)
	test.ExpectSuccess(t, curated.Is(err, memory.PokeError))
	err = mem.Poke(0x2000, 0x00)
	test.ExpectSuccess(t, curated.Is(err, memory.PokeError))
}

func TestSaveState(t *testing.T) {
	mem, _, _, _ := newMemory()
	mem.Write(0x0123, 0x45)
	mem.Write(0x4014, 0x07)

	enc := state.NewEncoder()
	mem.SaveState(enc)

	other, _, _, _ := newMemory()
	dec := state.NewDecoder(enc.Data())
	other.LoadState(dec)
	test.DemandSuccess(t, dec.Err())
	test.ExpectEquality(t, other.RAM[0x0123], uint8(0x45))
	test.ExpectEquality(t, other.LastData, uint8(0x07))

	page, ok := other.DMARequest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, page, uint8(0x07))
}
