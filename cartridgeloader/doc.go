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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated NES.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
//	cl := cartridgeloader.NewLoader("roms/nestest.nes")
//	err := cl.Load()
//
// The SHA1 hash of the data is available after loading. The hash is used to
// identify battery backed save files.
package cartridgeloader
