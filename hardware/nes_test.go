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

package hardware_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/audio"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mmc1"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/test"
)

// the program common to all the test cartridges. it starts at 0xc000 and is
// a loop of NOP instructions
var loop = []uint8{
	0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea,
	0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea,
	0x4c, 0x00, 0xc0, // JMP $c000
}

// cartridge creates iNES data for the mapper with the number of 16k PRG banks.
// the program is placed at the start of the last bank and all vectors point
// to it.
func cartridge(mapperNum uint8, banks int, program []uint8) cartridgeloader.Loader {
	data := []uint8{'N', 'E', 'S', 0x1a, uint8(banks), 1, mapperNum << 4, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	prg := make([]uint8, banks*0x4000)
	last := len(prg) - 0x4000
	copy(prg[last:], program)
	for _, v := range []int{0x3ffa, 0x3ffc, 0x3ffe} {
		prg[last+v] = 0x00
		prg[last+v+1] = 0xc0
	}

	data = append(data, prg...)
	data = append(data, make([]uint8, 0x2000)...)

	return cartridgeloader.NewLoaderFromData("test", data)
}

func newNES(t *testing.T, apu audio.Unit) *hardware.NES {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	ins, err := instance.NewInstance(instance.Test, prefs)
	test.DemandSuccess(t, err)
	ins.Normalise()

	nes, err := hardware.NewNES(ins, apu)
	test.DemandSuccess(t, err)

	return nes
}

func TestReset(t *testing.T) {
	nes := newNES(t, nil)
	test.DemandSuccess(t, nes.AttachCartridge(cartridge(0, 1, loop)))

	test.ExpectEquality(t, nes.Cycles(), uint64(7))
	test.ExpectEquality(t, nes.PPU.Scanline(), 0)
	test.ExpectEquality(t, nes.PPU.Dot(), 21)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc000))
	test.ExpectEquality(t, nes.CPU.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, nes.Readiness(), hardware.Running)

	// NOP takes two cycles
	test.DemandSuccess(t, nes.Step())
	test.ExpectEquality(t, nes.Cycles(), uint64(9))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc001))

	// reset takes the same number of cycles as power-on but the stack
	// pointer is decremented from where it was
	nes.Reset()
	test.ExpectEquality(t, nes.Cycles(), uint64(16))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc000))
	test.ExpectEquality(t, nes.CPU.SP.Value(), uint8(0xfa))
}

func TestOAMDMA(t *testing.T) {
	program := []uint8{
		0xa9, 0x02, // LDA #$02
		0x8d, 0x14, 0x40, // STA $4014
	}
	program = append(program, loop[5:]...)

	nes := newNES(t, nil)
	test.DemandSuccess(t, nes.AttachCartridge(cartridge(0, 1, program)))

	for i := 0; i < 256; i++ {
		nes.Mem.Write(0x0200+uint16(i), uint8(i))
	}

	test.DemandSuccess(t, nes.Step())
	test.DemandSuccess(t, nes.Step())

	// the transfer takes 513 cycles, plus one if it starts on an odd cycle.
	// the NOP that follows takes two cycles
	start := nes.Cycles()
	test.DemandSuccess(t, nes.Step())
	test.ExpectEquality(t, nes.Cycles()-start, 513+(start&0x01)+2)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc006))

	oam := nes.PPU.OAM()
	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, oam[i], uint8(i), i)
	}
}

// mockAPU requests a single DMC sample byte when asked to.
type mockAPU struct {
	*audio.Silent
	request   bool
	address   uint16
	delivered []uint8
}

func (a *mockAPU) DMCRequest() (uint16, bool) {
	if a.request {
		a.request = false
		return a.address, true
	}
	return 0, false
}

func (a *mockAPU) DMCDeliver(data uint8) {
	a.delivered = append(a.delivered, data)
}

func TestDMCStall(t *testing.T) {
	apu := &mockAPU{Silent: audio.NewSilent()}
	nes := newNES(t, apu)
	test.DemandSuccess(t, nes.AttachCartridge(cartridge(0, 1, loop)))

	apu.request = true
	apu.address = 0xc010

	nes.Clock()
	test.ExpectEquality(t, nes.Readiness(), hardware.DmcStall)
	test.ExpectFailure(t, nes.CPU.RdyFlg)
	nes.Clock()
	nes.Clock()
	test.ExpectEquality(t, len(apu.delivered), 0)
	nes.Clock()
	test.ExpectEquality(t, nes.Readiness(), hardware.Running)
	test.ExpectSuccess(t, nes.CPU.RdyFlg)
	test.DemandEquality(t, len(apu.delivered), 1)
	test.ExpectEquality(t, apu.delivered[0], uint8(0x4c))

	// the instruction that was delayed by the stall
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc000))
	test.DemandSuccess(t, nes.Step())
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc001))

	// the stall as part of a call to Step()
	apu.request = true
	start := nes.Cycles()
	test.DemandSuccess(t, nes.Step())
	test.ExpectEquality(t, nes.Cycles()-start, uint64(4+2))
	test.ExpectEquality(t, len(apu.delivered), 2)
}

func TestReadModifyWrite(t *testing.T) {
	// five INC instructions to the serial port of the MMC1. only the first
	// write of each instruction reaches the mapper, which is the unmodified
	// value of zero
	program := []uint8{}
	for i := 0; i < 5; i++ {
		program = append(program, 0xee, 0x00, 0x80) // INC $8000
	}
	program = append(program, loop...)

	nes := newNES(t, nil)
	test.DemandSuccess(t, nes.AttachCartridge(cartridge(1, 2, program)))

	m, ok := nes.Cart.Mapper().(*mmc1.MMC1)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, m.Control(), uint8(0x0c))

	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, nes.Step())
	}
	test.ExpectEquality(t, m.Control(), uint8(0x00))
}

type frameCounter struct {
	frames []uint64
}

func (c *frameCounter) NewFrame(_ *ppu.Frame, frameNum uint64) error {
	c.frames = append(c.frames, frameNum)
	return nil
}

func TestRunForFrameCount(t *testing.T) {
	nes := newNES(t, nil)
	test.DemandSuccess(t, nes.AttachCartridge(cartridge(0, 1, loop)))

	var c frameCounter
	nes.AddFrameSink(&c)

	test.DemandSuccess(t, nes.RunForFrameCount(3, nil))
	test.DemandEquality(t, len(c.frames), 3)
	test.ExpectEquality(t, c.frames[0], uint64(1))
	test.ExpectEquality(t, c.frames[2], uint64(3))

	// the run ends on the instruction that completed the third frame
	test.ExpectEquality(t, nes.PPU.FrameNum(), uint64(3))
	test.ExpectEquality(t, nes.PPU.Scanline(), ppu.ScanlinesPerFrame-1)
}

func TestRun(t *testing.T) {
	nes := newNES(t, nil)
	test.DemandSuccess(t, nes.AttachCartridge(cartridge(0, 1, loop)))

	var steps int
	err := nes.Run(func() (govern.State, error) {
		steps++
		if steps >= 17 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)

	// sixteen NOPs and one JMP
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc000))
	test.ExpectEquality(t, nes.Cycles(), uint64(7+16*2+3))

	err = nes.Run(func() (govern.State, error) {
		return govern.Initialising, nil
	})
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedState))
}

func TestSaveState(t *testing.T) {
	nes := newNES(t, nil)

	_, err := nes.SaveState()
	test.ExpectSuccess(t, curated.Is(err, hardware.NoCartridge))

	test.DemandSuccess(t, nes.AttachCartridge(cartridge(0, 1, loop)))

	for i := 0; i < 100; i++ {
		test.DemandSuccess(t, nes.Step())
	}

	data, err := nes.SaveState()
	test.DemandSuccess(t, err)
	cycles := nes.Cycles()

	for i := 0; i < 1000; i++ {
		test.DemandSuccess(t, nes.Step())
	}
	after := nes.String()

	test.DemandSuccess(t, nes.LoadState(data))
	test.ExpectEquality(t, nes.Cycles(), cycles)

	for i := 0; i < 1000; i++ {
		test.DemandSuccess(t, nes.Step())
	}
	test.ExpectEquality(t, nes.String(), after)

	// corrupt state
	err = nes.LoadState(data[:len(data)-1])
	test.ExpectFailure(t, err)

	bad := append([]uint8{}, data...)
	bad[4] = 99
	err = nes.LoadState(bad)
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedStateVersion))

	err = nes.LoadState(append(data, 0))
	test.ExpectSuccess(t, curated.Is(err, hardware.TrailingState))
}

func TestFailedLoadState(t *testing.T) {
	nes := newNES(t, nil)
	test.DemandSuccess(t, nes.AttachCartridge(cartridge(0, 1, loop)))

	for i := 0; i < 100; i++ {
		test.DemandSuccess(t, nes.Step())
	}
	data, err := nes.SaveState()
	test.DemandSuccess(t, err)

	for i := 0; i < 5000; i++ {
		test.DemandSuccess(t, nes.Step())
	}
	before := nes.String()
	cycles := nes.Cycles()
	ram := nes.Mem.Peek(0x0000)

	// the data is complete until near the end so most of the console has been
	// overwritten by the time the error is found
	err = nes.LoadState(data[:len(data)-20])
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, nes.String(), before)
	test.ExpectEquality(t, nes.Cycles(), cycles)
	test.ExpectEquality(t, nes.Mem.Peek(0x0000), ram)

	// and the console continues as if nothing had happened
	test.DemandSuccess(t, nes.Step())
	test.ExpectInequality(t, nes.Cycles(), cycles)
}
