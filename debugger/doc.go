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

// Package debugger implements a command-line debugger for the NES emulation.
//
// The debugger reads commands from a terminal.Terminal and executes them
// against a running hardware.NES. The emulation only advances when asked to,
// either by one of the stepping commands or by RUN, which continues until a
// breakpoint is reached or the user interrupts with CTRL-C.
//
// An empty line repeats the previous command. Addresses and values can be
// written in decimal or in hex with either the $ or 0x prefix. The HELP
// command lists all commands.
package debugger
