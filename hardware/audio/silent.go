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

package audio

import "github.com/jetsetilly/gophernes/hardware/state"

// number of registers in the 0x4000 to 0x4017 range.
const numRegisters = 0x18

// Silent implements the Unit interface. It records writes to the audio
// registers but does not synthesise any sound. The interrupt line is never
// raised and no DMC samples are requested.
type Silent struct {
	registers [numRegisters]uint8
}

// NewSilent is the preferred method of initialisation for the Silent type.
func NewSilent() *Silent {
	return &Silent{}
}

// Register returns the last value written to the register.
func (s *Silent) Register(addr uint16) uint8 {
	return s.registers[(addr-0x4000)%numRegisters]
}

// ReadStatus implements the Unit interface.
func (s *Silent) ReadStatus() uint8 {
	return 0
}

// WriteRegister implements the Unit interface.
func (s *Silent) WriteRegister(addr uint16, data uint8) {
	s.registers[(addr-0x4000)%numRegisters] = data
}

// Tick implements the Unit interface.
func (s *Silent) Tick() uint8 {
	return 0
}

// IRQ implements the Unit interface.
func (s *Silent) IRQ() bool {
	return false
}

// DMCRequest implements the Unit interface.
func (s *Silent) DMCRequest() (uint16, bool) {
	return 0, false
}

// DMCDeliver implements the Unit interface.
func (s *Silent) DMCDeliver(_ uint8) {
}

// Reset implements the Unit interface.
func (s *Silent) Reset() {
	s.registers = [numRegisters]uint8{}
}

// SaveState implements the Unit interface.
func (s *Silent) SaveState(enc *state.Encoder) {
	enc.Section("APU_")
	enc.Bytes(s.registers[:])
}

// LoadState implements the Unit interface.
func (s *Silent) LoadState(dec *state.Decoder) {
	dec.Section("APU_")
	dec.Bytes(s.registers[:])
}
