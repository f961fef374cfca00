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

package mapper

import (
	"github.com/jetsetilly/gophernes/hardware/state"
)

// CartMapper implementations hold the data from the cartridge image and keep
// track of which banks are mapped into the CPU and PPU address spaces. The
// implementation is chosen once, when the cartridge is attached, and is not
// inspected again during emulation.
//
// Addresses are not normalised. The CPU functions receive addresses in the
// range 0x4020 to 0xffff and the PPU functions receive addresses in the range
// 0x0000 to 0x3fff.
type CartMapper interface {
	ID() string
	MappedBanks() string

	// reset volatile areas of the cartridge. cartridge RAM is not affected
	Reset()

	// the mapped return value is false if the address does not belong to the
	// cartridge. in that case the data value is zero and the caller should
	// use its own decoding for the address
	CPURead(addr uint16) (data uint8, mapped bool)
	CPUWrite(addr uint16, data uint8) (mapped bool)
	PPURead(addr uint16) (data uint8, mapped bool)
	PPUWrite(addr uint16, data uint8) (mapped bool)

	// the current nametable mirroring
	Mirroring() Mirroring

	SaveState(enc *state.Encoder)
	LoadState(dec *state.Decoder)
}

// ScanlineIRQ is implemented by mappers that count scanlines and can raise an
// interrupt.
type ScanlineIRQ interface {
	// the state of the cartridge IRQ line
	IRQ() bool

	// DecrementScanline is called by the PPU once per rendered scanline
	DecrementScanline()
}

// InstructionObserver is implemented by mappers that need to know when the
// CPU moves on to a new instruction. The NES calls NotifyPC() once at every
// instruction boundary, before the instruction is executed, with the address
// of that instruction.
type InstructionObserver interface {
	NotifyPC(pc uint16)
}
