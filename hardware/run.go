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
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/govern"
)

// UnsupportedState is the pattern for errors returned by Run() and
// RunForFrameCount() when the continue check returns a state that the
// function can not handle.
const UnsupportedState = "nes: unsupported emulation state (%s)"

// cycle advances the console by one CPU cycle and forwards any completed frame
// to the frame sinks.
func (nes *NES) cycle() error {
	nes.Clock()

	if !nes.frameDone {
		return nil
	}
	nes.frameDone = false

	if err := nes.Input.Process(); err != nil {
		return err
	}

	for _, s := range nes.frameSinks {
		if err := s.NewFrame(nes.PPU.Frame(), nes.PPU.FrameNum()); err != nil {
			return err
		}
	}

	return nil
}

// Step advances the console until one instruction (or interrupt sequence)
// has been executed and all of its cycles have elapsed. Any DMA stall that
// precedes the instruction is included.
func (nes *NES) Step() error {
	executed := false
	for {
		if err := nes.cycle(); err != nil {
			return err
		}
		executed = executed || nes.executed
		if executed && nes.budget <= 0 && nes.readiness == Running {
			return nil
		}
	}
}

// Run the emulation continuously. The continueCheck function is called after
// every instruction and the emulation continues while it returns
// govern.Running. A nil continueCheck function will run the emulation
// forever.
func (nes *NES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for state != govern.Ending {
		switch {
		case state.Active():
			if err := nes.Step(); err != nil {
				return err
			}
		case state == govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		var err error
		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. The continueCheck function is called at the end of every frame and
// can be nil.
func (nes *NES) RunForFrameCount(numFrames int, continueCheck func(frame uint64) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame uint64) (govern.State, error) { return govern.Running, nil }
	}

	frameNum := nes.PPU.FrameNum()
	targetFrame := frameNum + uint64(numFrames)

	state := govern.Running
	for frameNum < targetFrame && state != govern.Ending {
		if err := nes.Step(); err != nil {
			return err
		}

		if nes.PPU.FrameNum() == frameNum {
			continue
		}
		frameNum = nes.PPU.FrameNum()

		var err error
		state, err = continueCheck(frameNum)
		if err != nil {
			return err
		}
		if state != govern.Running && state != govern.Ending {
			return curated.Errorf(UnsupportedState, state)
		}
	}

	return nil
}
