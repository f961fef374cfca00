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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and contains references to all
// the NES sub-systems. From here, the emulation can either be run
// continuously (with an optional callback to check for continuation), run for
// a number of frames, stepped one instruction at a time or clocked one CPU
// cycle at a time.
//
// Every CPU cycle the PPU is advanced by three dots. The CPU executes an
// instruction in its entirety on the first cycle of the instruction and then
// waits for the number of cycles the instruction would have taken. OAM DMA
// and DMC sample fetches stall the CPU between instructions. The stalls are
// modelled by the Readiness type.
package hardware
