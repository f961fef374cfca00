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

// Package registers implements the three types of register found in the 2A03
// CPU: the 8 bit general purpose registers, the 16 bit program counter and
// the status register. The stack pointer is an 8 bit Register that the CPU
// interprets as an offset into page one.
//
// The arithmetic and bitwise functions of Register return the carry and
// overflow states of the operation rather than updating a status register
// directly. It is the CPU's job to decide which flags an instruction affects.
package registers
