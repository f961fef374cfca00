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

// Package memory implements the CPU address space of the NES.
//
// The Memory type decodes CPU addresses and routes them to the internal RAM,
// the PPU registers, the audio unit, the controller ports and the cartridge.
// The layout of the address space is described by the memorymap package.
//
//	                         ---- RAM
//	                        |
//	                        |---- PPU registers ---- PPU
//	CPU ---- cpu bus ---- MEMORY
//	                        |---- APU / IO ---- audio unit, controllers
//	                        |
//	                         ---- cartridge mapper
//
// The cartridge mapper is given the first opportunity to claim an address. If
// the mapper does not claim it the address is decoded by the Memory type.
// Reads of addresses that are not connected to anything return the last value
// seen on the data bus.
//
// A write to OAMDMA (0x4014) does not perform the DMA transfer immediately.
// Instead, the request is recorded and collected by the console with
// DMARequest(). The transfer itself is clocked by the console.
package memory
