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

// Package cartridge loads iNES cartridge images and selects the mapper
// implementation for the cartridge.
//
// Currently supported mappers are listed below, with the iNES mapper number.
//
//	0	NROM
//	1	MMC1 (SxROM)
//	2	UxROM
//	3	CNROM
//	4	MMC3 (TxROM)
//
// The mapper is chosen once, when the cartridge is attached. The NES then
// accesses the cartridge through the mapper.CartMapper interface returned by
// the Mapper() function.
//
// Cartridges with battery backed RAM can have the RAM saved to and restored
// from disk with the SaveBattery() and LoadBattery() functions.
package cartridge
