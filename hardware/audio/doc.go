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

// Package audio defines how the console talks to the audio unit of the 2A03.
//
// Synthesis of the audio channels is not part of the emulation. The Unit
// interface describes what the console needs from an audio unit: access to
// the registers in the 0x4000 to 0x4017 range, a tick every CPU cycle that
// returns the current output amplitude, the frame counter / DMC interrupt line
// and DMC sample fetches.
//
// The Silent type is a Unit that remembers register writes but produces no
// sound.
//
// The console produces one sample per CPU cycle, delta encoded with the
// Encoder type, and passes it to a Sink.
package audio
