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

// Unit is the audio unit of the 2A03.
type Unit interface {
	// ReadStatus is called on reads of 0x4015.
	ReadStatus() uint8

	// WriteRegister is called on writes to 0x4000 to 0x4013, 0x4015 and
	// 0x4017.
	WriteRegister(addr uint16, data uint8)

	// Tick advances the unit by one CPU cycle and returns the output
	// amplitude.
	Tick() uint8

	// IRQ returns the state of the interrupt line.
	IRQ() bool

	// DMCRequest returns the address of the next sample byte if the DMC
	// channel requires one. The console stalls the CPU while the byte is
	// fetched and then calls DMCDeliver().
	DMCRequest() (uint16, bool)
	DMCDeliver(data uint8)

	Reset()
	SaveState(enc *state.Encoder)
	LoadState(dec *state.Decoder)
}

// Sink receives the audio stream produced by the console.
type Sink interface {
	// Sample is called once per CPU cycle with the change in amplitude since
	// the previous call.
	Sample(delta int)

	// EndMixing is called when no more samples will be sent.
	EndMixing() error
}

// Encoder converts absolute amplitudes into deltas.
type Encoder struct {
	last uint8
}

// Encode returns the difference between the amplitude and the amplitude
// passed on the previous call.
func (e *Encoder) Encode(amplitude uint8) int {
	d := int(amplitude) - int(e.last)
	e.last = amplitude
	return d
}

// Reset the encoder to zero amplitude.
func (e *Encoder) Reset() {
	e.last = 0
}

// Decoder converts deltas back into absolute amplitudes.
type Decoder struct {
	amplitude int
}

// Decode returns the amplitude after applying the delta.
func (d *Decoder) Decode(delta int) int {
	d.amplitude += delta
	return d.amplitude
}
