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

// Package clocks defines the clock frequencies of the NTSC NES.
package clocks

// Frequencies in MHz.
const (
	NTSCMaster = 21.477272
	NTSC_CPU   = NTSCMaster / 12
	NTSC_PPU   = NTSCMaster / 4
)

// Number of PPU dots for every CPU cycle.
const DotsPerCycle = 3

// Nominal refresh rate of the NTSC NES. The actual rate is slightly lower
// because of the skipped dot on odd frames.
const NTSCRefresh = 60.0988
