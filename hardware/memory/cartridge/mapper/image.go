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

// Size of the PRG-RAM window in the CPU address space.
const (
	OriginPRGRAM = uint16(0x6000)
	MemtopPRGRAM = uint16(0x7fff)
	OriginPRGROM = uint16(0x8000)
)

// Image is the data from the cartridge file, as required by the mappers.
type Image struct {
	// the mapper number
	Number int

	PRGROM []uint8

	// CHR is either ROM or RAM. CHRRAM is true if it is RAM
	CHR    []uint8
	CHRRAM bool

	// PRGRAM is nil if the cartridge has no RAM
	PRGRAM  []uint8
	Battery bool

	// mirroring as specified by the cartridge header. some mappers override
	// this value
	Mirroring Mirroring
}

// HasPRGRAM returns true if the cartridge has RAM in the 0x6000 to 0x7fff
// window.
func (img *Image) HasPRGRAM() bool {
	return len(img.PRGRAM) > 0
}

// ReadPRGRAM returns the value in PRG-RAM. The address is a CPU address.
func (img *Image) ReadPRGRAM(addr uint16) (uint8, bool) {
	if !img.HasPRGRAM() || addr < OriginPRGRAM || addr > MemtopPRGRAM {
		return 0, false
	}
	return img.PRGRAM[int(addr-OriginPRGRAM)%len(img.PRGRAM)], true
}

// WritePRGRAM writes to PRG-RAM. The address is a CPU address.
func (img *Image) WritePRGRAM(addr uint16, data uint8) bool {
	if !img.HasPRGRAM() || addr < OriginPRGRAM || addr > MemtopPRGRAM {
		return false
	}
	img.PRGRAM[int(addr-OriginPRGRAM)%len(img.PRGRAM)] = data
	return true
}

// ReadCHR reads from CHR memory at the index. The index wraps to the length of
// the data.
func (img *Image) ReadCHR(idx int) uint8 {
	if len(img.CHR) == 0 {
		return 0
	}
	return img.CHR[idx%len(img.CHR)]
}

// WriteCHR writes to CHR memory if it is RAM. Writes to CHR-ROM are ignored.
func (img *Image) WriteCHR(idx int, data uint8) {
	if !img.CHRRAM || len(img.CHR) == 0 {
		return
	}
	img.CHR[idx%len(img.CHR)] = data
}

// ReadPRGROM reads from PRG-ROM at the index. The index wraps to the length of
// the data.
func (img *Image) ReadPRGROM(idx int) uint8 {
	if len(img.PRGROM) == 0 {
		return 0
	}
	return img.PRGROM[idx%len(img.PRGROM)]
}

// SaveState writes the volatile memory of the cartridge.
func (img *Image) SaveState(enc *state.Encoder) {
	enc.Section("CRAM")
	enc.Bytes(img.PRGRAM)
	if img.CHRRAM {
		enc.Bytes(img.CHR)
	}
}

// LoadState reads the volatile memory of the cartridge.
func (img *Image) LoadState(dec *state.Decoder) {
	dec.Section("CRAM")
	dec.Bytes(img.PRGRAM)
	if img.CHRRAM {
		dec.Bytes(img.CHR)
	}
}
