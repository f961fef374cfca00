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

// Package input implements the two standard controller ports of the NES.
//
// Each controller is an eight bit parallel-in serial-out shift register. While
// the strobe bit (bit 0 of a write to 0x4016) is high the register is
// continuously reloaded with the state of the buttons. When the strobe goes
// low, successive reads return one button at a time, in the order A, B,
// Select, Start, Up, Down, Left, Right. After eight reads the standard
// controller returns 1.
//
// Input events can be pushed from another goroutine with PushEvent(). Pushed
// events are applied to the controllers when Process() is called by the
// emulation goroutine.
package input
