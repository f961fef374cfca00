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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/performance/limiter"
)

// Error is the pattern for errors returned by Check().
const Error = "performance: %v"

// sentinal error returned by the Run() loop.
var timedOut = errors.New("performance timed out")

// number of instructions between checks of the timer.
const performanceBrake = 1000

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu or
// memory profile, a trace or a combination of those as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, uncapped bool, duration string) error {
	ins, err := instance.NewInstance(instance.Performance, nil)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	nes, err := hardware.NewNES(ins, nil)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	if err := nes.AttachCartridge(cartload); err != nil {
		return curated.Errorf(Error, err)
	}

	if !uncapped {
		lim := limiter.NewFPSLimiter(clocks.NTSCRefresh)
		defer lim.Stop()
		nes.AddFrameSink(lim)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	startFrame := nes.PPU.FrameNum()

	runner := func() error {
		// the timer channel signals false when the two second leadtime has
		// elapsed and true when the measurement period has finished
		timerChan := make(chan bool, 1)
		time.AfterFunc(2*time.Second, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		brake := 0

		return nes.Run(func() (govern.State, error) {
			brake++
			if brake < performanceBrake {
				return govern.Running, nil
			}
			brake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = nes.PPU.FrameNum()
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(Error, err)
	}

	numFrames := nes.PPU.FrameNum() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
