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

// Package modalflag wraps the flag package in the standard library so that
// the command line can select a mode of operation, each mode having its own
// set of flags.
//
// Arguments are given to the Modes type with NewArgs() and are then parsed
// one layer at a time. Each call to Parse() handles the flags of the current
// mode and, if sub-modes have been added, consumes the sub-mode selector that
// follows them:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		pc := md.AddAddress("pc", 0, "start address")
//		...
//	}
//
// The first sub-mode is the default and is selected when the next argument
// is not a sub-mode. Sub-mode comparisons are case insensitive.
//
// The -help flag is handled by Parse(), which writes the flags and sub-modes
// of the current mode to the Output writer.
package modalflag
