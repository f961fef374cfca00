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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/debugger"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/debugger/terminal/colorterm"
	"github.com/jetsetilly/gophernes/debugger/terminal/plainterm"
	"github.com/jetsetilly/gophernes/digest"
	"github.com/jetsetilly/gophernes/disassembly"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/performance/limiter"
	"github.com/jetsetilly/gophernes/regression"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/version"
	"github.com/jetsetilly/gophernes/wavwriter"
)

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the value
// to be used with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TRACE", "DISASM", "DEBUG", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "TRACE":
		err = trace(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "DEBUG":
		err = debug(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "REGRESS":
		err = regress(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// cartridgeArg returns a loader for the single remaining argument.
func cartridgeArg(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

func setEcho(log bool, output io.Writer) {
	if log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func newNES(cartload cartridgeloader.Loader) (*hardware.NES, error) {
	nes, err := hardware.NewNES(nil, nil)
	if err != nil {
		return nil, err
	}
	if err := nes.AttachCartridge(cartload); err != nil {
		return nil, err
	}
	return nes, nil
}

func run(md *modalflag.Modes, output io.Writer) (rerr error) {
	md.NewMode()

	frames := md.AddInt("frames", 0, "number of frames to run for. zero runs until interrupted")
	wav := md.AddString("wav", "", "record audio to wav file")
	showDigest := md.AddBool("digest", false, "print the digest of the video output when finished")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run statsview server on %s", statsview.DefaultAddress))
	memvizFile := md.AddString("memviz", "", "write a graphviz description of the console to file when finished")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the NTSC refresh rate")
	log := md.AddBool("log", false, "echo debugging log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	nes, err := newNES(cartload)
	if err != nil {
		return err
	}
	defer func() {
		if err := nes.SaveBattery(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if *stats {
		stop := statsview.Launch(output, statsview.DefaultAddress)
		defer stop()
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		nes.SetAudioSink(aw)
		defer func() {
			if err := aw.EndMixing(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	var dig *digest.Video
	if *showDigest {
		dig = digest.NewVideo()
		nes.AddFrameSink(dig)
	}

	if *fpsCap {
		lim := limiter.NewFPSLimiter(clocks.NTSCRefresh)
		defer lim.Stop()
		nes.AddFrameSink(lim)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	interrupted := func() bool {
		select {
		case <-intChan:
			return true
		default:
		}
		return false
	}

	if *frames > 0 {
		err = nes.RunForFrameCount(*frames, func(_ uint64) (govern.State, error) {
			if interrupted() {
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
	} else {
		err = nes.Run(func() (govern.State, error) {
			if interrupted() {
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
	}
	if err != nil {
		return err
	}

	if dig != nil {
		fmt.Fprintf(output, "%s (frame %d)\n", dig.Hash(), dig.FrameNum())
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, nes)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func trace(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pc := md.AddAddress("pc", 0, "program counter to start from. zero uses the reset vector")
	count := md.AddInt("count", 10000, "number of instructions to trace")
	log := md.AddBool("log", false, "echo debugging log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	nes, err := newNES(cartload)
	if err != nil {
		return err
	}

	if *pc != 0 {
		nes.CPU.PC.Load(*pc)
	}

	return disassembly.WriteTrace(output, nes, *count)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	address := md.AddAddress("address", 0, "address to start from. zero uses the reset vector")
	count := md.AddInt("count", 32, "number of instructions to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	nes, err := newNES(cartload)
	if err != nil {
		return err
	}

	if *address == 0 {
		*address = nes.CPU.PC.Address()
	}

	_, err = disassembly.Listing(output, nes.Mem, *address, *count)
	return err
}

func debug(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	nes, err := newNES(cartload)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		// the plain terminal is used if the color terminal can not be
		// initialised
		ct := &colorterm.ColorTerminal{}
		if err := ct.Initialise(); err != nil {
			fmt.Fprintf(output, "* %v: using plain terminal\n", err)
			term = plainterm.NewPlainTerminal(os.Stdin, output, true)
		} else {
			ct.CleanUp()
			term = ct
		}
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, output, true)
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	dbg := debugger.NewDebugger(nes, term)
	if err := dbg.Start(); err != nil {
		return err
	}

	return nes.SaveBattery()
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	uncapped := md.AddBool("uncapped", true, "run performance with no FPS cap")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	log := md.AddBool("log", false, "echo debugging log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, cartload, *uncapped, *duration)
}

func regress(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "ADD", "DELETE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail about failures")
		failOnError := md.AddBool("fail", false, "stop on the first failure")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(output, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(output)

	case "ADD":
		md.NewMode()

		mode := md.AddString("mode", "video", "type of output to digest: VIDEO, AUDIO")
		frames := md.AddInt("frames", 10, "number of frames to run for")
		notes := md.AddString("notes", "", "additional annotation for the entry")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		cartload, err := cartridgeArg(md)
		if err != nil {
			return err
		}

		m, err := regression.ParseMode(*mode)
		if err != nil {
			return err
		}

		reg, err := regression.NewDigestRegression(m, cartload, *frames, *notes)
		if err != nil {
			return err
		}

		return regression.RegressAdd(output, reg)

	case "DELETE":
		md.NewMode()

		yes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) != 1 {
			return fmt.Errorf("a single key is required for %s mode", md)
		}

		var confirmation io.Reader = os.Stdin
		if *yes {
			confirmation = nil
		}

		return regression.RegressDelete(output, confirmation, md.GetArg(0))
	}

	return nil
}
