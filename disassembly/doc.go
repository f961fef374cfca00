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

// Package disassembly decodes 2A03 instructions from memory and formats them
// for the debugger and for execution traces.
//
// Decode() works on any type that implements the Peeker interface. Peeking
// memory must not have side effects, which is why the disassembly never reads
// through the memory type used by the CPU.
//
// The trace format produced by TraceLine() is the same as the format of the
// well known nestest.log, which makes it possible to compare the execution of
// the emulation with a known good log line by line:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
//
// Undocumented instructions are prefixed with an asterisk.
package disassembly
