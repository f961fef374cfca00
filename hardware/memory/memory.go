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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/audio"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/hardware/state"
)

// PokeError is the pattern for errors returned by Poke().
const PokeError = "memory: cannot poke address ($%04x)"

// PPU is the CPU's view of the PPU.
type PPU interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, data uint8)
	PeekRegister(addr uint16) uint8
}

// Input is the CPU's view of the controller ports.
type Input interface {
	Strobe(data uint8)
	Read(port int) uint8
	Peek(port int) uint8
}

// Memory is the CPU address space. It implements the cpubus.Memory
// interface.
type Memory struct {
	instance *instance.Instance

	RAM RAM

	ppu   PPU
	apu   audio.Unit
	input Input
	cart  mapper.CartMapper

	// the last value seen on the data bus. returned by reads of addresses
	// that are not connected to anything
	LastData uint8

	// LastAddress is the address of the most recent read or write
	LastAddress uint16

	// page requested by the most recent write to OAMDMA
	dmaRequested bool
	dmaPage      uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(instance *instance.Instance, ppu PPU, apu audio.Unit, input Input) *Memory {
	mem := &Memory{
		instance: instance,
		ppu:      ppu,
		apu:      apu,
		input:    input,
	}
	mem.PowerOn()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("last=$%04x data=%02x", mem.LastAddress, mem.LastData)
}

// Plumb the cartridge mapper into the address space. The mapper can be nil,
// in which case the cartridge area is unconnected.
func (mem *Memory) Plumb(cart mapper.CartMapper) {
	mem.cart = cart
}

// PowerOn clears internal RAM, or randomises it if the RandomState preference
// is set.
func (mem *Memory) PowerOn() {
	mem.RAM = RAM{}
	if mem.instance != nil && mem.instance.Prefs.RandomState.Get().(bool) {
		mem.instance.Random.Fill(mem.RAM[:])
	}
	mem.Reset()
}

// Reset the state of the bus. RAM is unaffected.
func (mem *Memory) Reset() {
	mem.LastData = 0
	mem.LastAddress = 0
	mem.dmaRequested = false
	mem.dmaPage = 0
}

// DMARequest returns the page number of the most recent write to OAMDMA.
// Returns false if there has been no write since the last call.
func (mem *Memory) DMARequest() (uint8, bool) {
	if !mem.dmaRequested {
		return 0, false
	}
	mem.dmaRequested = false
	return mem.dmaPage, true
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	mem.LastAddress = address
	mem.LastData = mem.read(address, false)
	return mem.LastData
}

// Peek returns the value at the address without side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.read(address, true)
}

func (mem *Memory) read(address uint16, peek bool) uint8 {
	if mem.cart != nil {
		if data, ok := mem.cart.CPURead(address); ok {
			return data
		}
	}

	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM[ma]

	case memorymap.PPU:
		if peek {
			return mem.ppu.PeekRegister(ma)
		}
		return mem.ppu.ReadRegister(ma)

	case memorymap.IO:
		if ma == memorymap.OAMDMA {
			break
		}

		// only the lower bits are driven by the controller
		port := int(ma - memorymap.JOYPAD1)
		var data uint8
		if peek {
			data = mem.input.Peek(port)
		} else {
			data = mem.input.Read(port)
		}
		return (mem.LastData & 0xe0) | (data & 0x1f)

	case memorymap.APU:
		if ma == 0x4015 {
			// bit 5 is not driven
			return (mem.apu.ReadStatus() &^ 0x20) | (mem.LastData & 0x20)
		}
	}

	return mem.LastData
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.LastAddress = address
	mem.LastData = data

	if mem.cart != nil && mem.cart.CPUWrite(address, data) {
		return
	}

	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM[ma] = data

	case memorymap.PPU:
		mem.ppu.WriteRegister(ma, data)

	case memorymap.IO:
		switch ma {
		case memorymap.OAMDMA:
			mem.dmaRequested = true
			mem.dmaPage = data
		case memorymap.JOYPAD1:
			mem.input.Strobe(data)
		case memorymap.JOYPAD2:
			// the write half of JOYPAD2 is the audio frame counter
			mem.apu.WriteRegister(ma, data)
		}

	case memorymap.APU:
		mem.apu.WriteRegister(ma, data)
	}
}

// Poke writes directly to internal RAM or to the cartridge. Unlike Write(),
// no other part of the system is affected.
func (mem *Memory) Poke(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM[ma] = data
		return nil
	case memorymap.Cartridge:
		// only RAM in the cartridge can be poked. writing to the ROM area
		// would be interpreted as a bank switch
		if mem.cart != nil && address < mapper.OriginPRGROM && mem.cart.CPUWrite(address, data) {
			return nil
		}
	}

	return curated.Errorf(PokeError, address)
}

// SaveState writes internal RAM and the state of the bus to the encoder.
func (mem *Memory) SaveState(enc *state.Encoder) {
	enc.Section("MEM_")
	enc.Bytes(mem.RAM[:])
	enc.Uint8(mem.LastData)
	enc.Uint16(mem.LastAddress)
	enc.Bool(mem.dmaRequested)
	enc.Uint8(mem.dmaPage)
}

// LoadState restores internal RAM and the state of the bus from the decoder.
func (mem *Memory) LoadState(dec *state.Decoder) {
	dec.Section("MEM_")
	dec.Bytes(mem.RAM[:])
	mem.LastData = dec.Uint8()
	mem.LastAddress = dec.Uint16()
	mem.dmaRequested = dec.Bool()
	mem.dmaPage = dec.Uint8()
}
