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

package hardware

// Readiness is the state of the CPU's RDY line, as driven by the bus.
type Readiness int

// List of valid Readiness values.
const (
	// the CPU is executing instructions
	Running Readiness = iota

	// the CPU is halted while sprite memory is copied by OAM DMA
	DmaStall

	// the CPU is halted while the audio unit fetches a DMC sample byte
	DmcStall
)

func (r Readiness) String() string {
	switch r {
	case Running:
		return "Running"
	case DmaStall:
		return "DmaStall"
	case DmcStall:
		return "DmcStall"
	}
	return "undefined"
}

// Number of cycles the CPU is halted for by a DMC sample fetch.
const dmcStallCycles = 4

// oamDMA is the progress of an OAM DMA transfer. The transfer alternates
// between reading a byte from the CPU page and writing it to OAM.
type oamDMA struct {
	page uint8

	// number of dummy cycles before the transfer starts. one cycle to halt
	// the CPU and one more if the transfer starts on an odd cycle
	wait int

	// the number of bytes written to OAM
	count int

	// the byte read in the read half of the transfer
	data    uint8
	latched bool
}

// dmcDMA is the progress of a DMC sample fetch.
type dmcDMA struct {
	address uint16
	wait    int
}

// setReadiness changes the readiness state and sets the RDY line of the CPU
// accordingly.
func (nes *NES) setReadiness(r Readiness) {
	nes.readiness = r
	nes.CPU.RdyFlg = r == Running
}

// startOAMDMA halts the CPU for an OAM DMA transfer.
func (nes *NES) startOAMDMA(page uint8) {
	nes.oam = oamDMA{
		page: page,
		wait: 1 + int(nes.cycles&0x01),
	}
	nes.setReadiness(DmaStall)
}

// stepOAMDMA performs one cycle of an OAM DMA transfer.
func (nes *NES) stepOAMDMA() {
	if nes.oam.wait > 0 {
		nes.oam.wait--
		return
	}

	if !nes.oam.latched {
		nes.oam.data = nes.Mem.Read(uint16(nes.oam.page)<<8 | uint16(nes.oam.count))
		nes.oam.latched = true
		return
	}

	nes.PPU.WriteOAM(nes.oam.data)
	nes.oam.latched = false
	nes.oam.count++
	if nes.oam.count >= 256 {
		nes.setReadiness(Running)
	}
}

// startDMCDMA halts the CPU for a DMC sample fetch.
func (nes *NES) startDMCDMA(address uint16) {
	nes.dmc = dmcDMA{
		address: address,
		wait:    dmcStallCycles,
	}
	nes.setReadiness(DmcStall)
}

// stepDMCDMA performs one cycle of a DMC sample fetch. The sample byte is
// read on the last cycle.
func (nes *NES) stepDMCDMA() {
	nes.dmc.wait--
	if nes.dmc.wait > 0 {
		return
	}
	nes.APU.DMCDeliver(nes.Mem.Read(nes.dmc.address))
	nes.setReadiness(Running)
}
