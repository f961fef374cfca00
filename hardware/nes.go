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

import (
	"fmt"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/audio"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/logger"
)

// FrameSink is implemented by types that want to receive completed frames.
type FrameSink interface {
	NewFrame(frame *ppu.Frame, frameNum uint64) error
}

// NES is the root of the emulation.
type NES struct {
	Instance *instance.Instance

	CPU   *cpu.CPU
	PPU   *ppu.PPU
	Mem   *memory.Memory
	APU   audio.Unit
	Input *input.Input
	Cart  *cartridge.Cartridge

	// the mapper of the attached cartridge, if it implements the optional
	// interfaces. these are decided once when the cartridge is attached
	scanlineIRQ mapper.ScanlineIRQ
	observer    mapper.InstructionObserver

	readiness Readiness
	oam       oamDMA
	dmc       dmcDMA

	// number of cycles remaining of the current instruction
	budget int

	// an instruction was started on the most recent call to Clock()
	executed bool

	// a frame was completed during the most recent call to Clock()
	frameDone bool

	// number of CPU cycles since power on
	cycles uint64

	frameSinks []FrameSink
	audioSink  audio.Sink
	encoder    audio.Encoder
}

// NewNES is the preferred method of initialisation for the NES type.
//
// The instance argument can be nil, in which case a new instance is created
// with the main label and preferences loaded from disk. The audio unit can
// also be nil, in which case an audio.Silent unit is used.
func NewNES(ins *instance.Instance, apu audio.Unit) (*NES, error) {
	if ins == nil {
		var err error
		ins, err = instance.NewInstance(instance.Main, nil)
		if err != nil {
			return nil, err
		}
	}

	if apu == nil {
		apu = audio.NewSilent()
	}

	nes := &NES{
		Instance: ins,
		APU:      apu,
		Input:    input.NewInput(),
		Cart:     cartridge.NewCartridge(ins),
	}

	nes.PPU = ppu.NewPPU(ins, nil)
	nes.Mem = memory.NewMemory(ins, nes.PPU, nes.APU, nes.Input)
	nes.CPU = cpu.NewCPU(ins, nes.Mem)

	ins.Random.SetClock(nes)

	return nes, nil
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s cycles=%d %s %s", nes.readiness, nes.cycles, nes.CPU, nes.PPU)
}

// MasterCycles implements the random.Clock interface.
func (nes *NES) MasterCycles() uint64 {
	return nes.cycles * 12
}

// Cycles returns the number of CPU cycles since power on.
func (nes *NES) Cycles() uint64 {
	return nes.cycles
}

// Readiness returns the current state of the CPU's RDY line.
func (nes *NES) Readiness() Readiness {
	return nes.readiness
}

// AddFrameSink adds a sink to the list of sinks that receive completed
// frames.
func (nes *NES) AddFrameSink(s FrameSink) {
	nes.frameSinks = append(nes.frameSinks, s)
}

// SetAudioSink sets the sink that receives the audio stream. A nil sink
// discards the audio.
func (nes *NES) SetAudioSink(s audio.Sink) {
	nes.audioSink = s
	nes.encoder.Reset()
}

// AttachCartridge loads the cartridge, restores any battery backed RAM and
// powers on the console.
func (nes *NES) AttachCartridge(cartload cartridgeloader.Loader) error {
	if err := nes.Cart.Attach(cartload); err != nil {
		return err
	}

	if err := nes.Cart.LoadBattery(); err != nil {
		logger.Log(nes.Instance, "nes", err.Error())
	}

	m := nes.Cart.Mapper()
	nes.Mem.Plumb(m)
	nes.PPU.Plumb(m)

	// the optional mapper interfaces are checked once
	nes.scanlineIRQ, _ = m.(mapper.ScanlineIRQ)
	nes.observer, _ = m.(mapper.InstructionObserver)

	nes.PowerOn()

	return nil
}

// SaveBattery writes battery backed RAM to disk. It should be called before
// the emulation ends.
func (nes *NES) SaveBattery() error {
	return nes.Cart.SaveBattery()
}

// PowerOn puts the console into the power-on state and runs the RESET
// sequence.
func (nes *NES) PowerOn() {
	nes.cycles = 0
	nes.PPU.PowerOn()
	nes.Mem.PowerOn()
	nes.reset(nes.CPU.PowerOn)
}

// Reset the console, as though the reset button had been pressed. Memory is
// unaffected.
func (nes *NES) Reset() {
	nes.PPU.Reset()
	nes.Mem.Reset()
	nes.reset(nes.CPU.Reset)
}

// reset the bus and the components that do not distinguish between power-on
// and reset. The cpuReset function performs the CPU part of the sequence and
// the console is clocked for the number of cycles it takes.
func (nes *NES) reset(cpuReset func() int) {
	nes.APU.Reset()
	if m := nes.Cart.Mapper(); m != nil {
		m.Reset()
	}

	nes.oam = oamDMA{}
	nes.dmc = dmcDMA{}
	nes.executed = false
	nes.frameDone = false
	nes.encoder.Reset()

	nes.budget = cpuReset()
	nes.setReadiness(Running)

	for nes.budget > 0 {
		nes.Clock()
	}

	logger.Logf(nes.Instance, "nes", "reset to $%04x", nes.CPU.PC.Address())
}

// Clock advances the console by one CPU cycle.
func (nes *NES) Clock() {
	nes.executed = false

	// the PPU runs three times as fast as the CPU
	for i := 0; i < clocks.DotsPerCycle; i++ {
		nes.PPU.Step()
		if nes.PPU.NMI() {
			nes.CPU.TriggerNMI()
		}
		if nes.PPU.NewFrame() {
			nes.frameDone = true
		}
	}

	switch nes.readiness {
	case Running:
		if nes.budget <= 0 {
			nes.instructionBoundary()
		}
		if nes.readiness == Running {
			nes.budget--
		} else {
			nes.step()
		}
	case DmaStall, DmcStall:
		nes.step()
	}

	amplitude := nes.APU.Tick()
	if nes.audioSink != nil {
		nes.audioSink.Sample(nes.encoder.Encode(amplitude))
	}

	nes.cycles++
}

// step performs one cycle of the current DMA stall.
func (nes *NES) step() {
	switch nes.readiness {
	case DmaStall:
		nes.stepOAMDMA()
	case DmcStall:
		nes.stepDMCDMA()
	}
}

// instructionBoundary is called on the first cycle after the previous
// instruction has completed. Pending DMA requests are started or the next
// instruction is executed.
func (nes *NES) instructionBoundary() {
	if address, ok := nes.APU.DMCRequest(); ok {
		nes.startDMCDMA(address)
		return
	}

	if page, ok := nes.Mem.DMARequest(); ok {
		nes.startOAMDMA(page)
		return
	}

	if nes.observer != nil {
		nes.observer.NotifyPC(nes.CPU.PC.Address())
	}

	irq := nes.APU.IRQ()
	if nes.scanlineIRQ != nil {
		irq = irq || nes.scanlineIRQ.IRQ()
	}
	nes.CPU.SetIRQ(irq)

	nes.budget = nes.CPU.ExecuteInstruction()
	nes.executed = true
}
