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

package debugger

import (
	"fmt"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/debugger/terminal/commandline"
	"github.com/jetsetilly/gophernes/disassembly"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/memory/addresses"
	"github.com/jetsetilly/gophernes/logger"
)

// Sentinal error patterns.
const (
	UnknownCommand = "unknown command (%s)"
	CommandError   = "%s: %v"
)

type command struct {
	name string
	args string
	help string
}

var commands = []command{
	{"STEP", "[n]", "execute n instructions (default 1)"},
	{"TRACE", "[n]", "execute n instructions (default 10), printing a trace line for each"},
	{"FRAME", "[n]", "run until n frames have completed (default 1)"},
	{"RUN", "", "run until a breakpoint is reached or CTRL-C is pressed"},
	{"BREAK", "[address]", "add a breakpoint on the PC address or list breakpoints"},
	{"CLEAR", "[address]", "remove the breakpoint on the PC address or all breakpoints"},
	{"CPU", "", "show the CPU registers, the last instruction and the interrupt lines"},
	{"PPU", "", "show the PPU registers and timing"},
	{"RAM", "[page]", "show internal RAM or a single page of it"},
	{"PEEK", "address [n]", "show n bytes (default 1) without side effects"},
	{"POKE", "address value", "write a value to RAM or cartridge RAM"},
	{"DISASM", "[address] [n]", "disassemble n instructions (default 10) from the address (default PC)"},
	{"CARTRIDGE", "", "show the cartridge and the mapped banks"},
	{"PRESS", "port button", "press a controller button (A B SELECT START UP DOWN LEFT RIGHT)"},
	{"RELEASE", "port button", "release a controller button"},
	{"RESET", "", "press the reset button"},
	{"SAVE", "[file]", "save the emulation state to the file or to memory"},
	{"LOAD", "[file]", "load the emulation state from the file or from memory"},
	{"MEMVIZ", "file [CPU|PPU|INPUT|CART]", "write a graphviz description of the emulation structure"},
	{"LOG", "[n]", "show the last n log entries (default 10)"},
	{"HELP", "[command]", "list commands or show help for a command"},
	{"QUIT", "", "leave the debugger"},
}

func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	name, _ := tokens.Get()

	var err error
	switch name {
	case "STEP":
		err = dbg.cmdStep(tokens)
	case "TRACE":
		err = dbg.cmdTrace(tokens)
	case "FRAME":
		err = dbg.cmdFrame(tokens)
	case "RUN":
		err = dbg.run()
	case "BREAK":
		err = dbg.cmdBreak(tokens)
	case "CLEAR":
		err = dbg.cmdClear(tokens)
	case "CPU":
		dbg.printLine(terminal.StyleCPUStep, dbg.nes.CPU.String())
		dbg.printLine(terminal.StyleCPUStep, dbg.nes.CPU.LastResult.String())
		dbg.printLine(terminal.StyleCPUStep, fmt.Sprintf("NMI pending=%v IRQ line=%v", dbg.nes.CPU.PendingNMI(), dbg.nes.CPU.IRQLine()))
	case "PPU":
		dbg.printLine(terminal.StyleVideoStep, dbg.nes.PPU.String())
		dbg.printLine(terminal.StyleVideoStep, dbg.nes.PPU.Registers())
	case "RAM":
		err = dbg.cmdRAM(tokens)
	case "PEEK":
		err = dbg.cmdPeek(tokens)
	case "POKE":
		err = dbg.cmdPoke(tokens)
	case "DISASM":
		err = dbg.cmdDisasm(tokens)
	case "CARTRIDGE":
		dbg.printLine(terminal.StyleMachineInfo, dbg.nes.Cart.String())
		if m := dbg.nes.Cart.Mapper(); m != nil {
			dbg.printLine(terminal.StyleMachineInfo, m.MappedBanks())
		}
	case "PRESS", "RELEASE":
		err = dbg.cmdController(tokens, name == "PRESS")
	case "RESET":
		dbg.nes.Reset()
		dbg.printLine(terminal.StyleFeedback, "reset to $%04x", dbg.nes.CPU.PC.Address())
	case "SAVE":
		err = dbg.cmdSave(tokens)
	case "LOAD":
		err = dbg.cmdLoad(tokens)
	case "MEMVIZ":
		err = dbg.cmdMemviz(tokens)
	case "LOG":
		var n uint64
		n, err = tokens.GetOptionalNumber(10, 1000)
		if err == nil {
			logger.Tail(dbg.writer(terminal.StyleEmulatorInfo), int(n))
		}
	case "HELP":
		dbg.cmdHelp(tokens)
	case "QUIT":
		dbg.state = govern.Ending
	default:
		return curated.Errorf(UnknownCommand, name)
	}

	if err != nil {
		return curated.Errorf(CommandError, strings.ToLower(name), err)
	}
	return nil
}

func (dbg *Debugger) cmdStep(tokens *commandline.Tokens) error {
	n, err := tokens.GetOptionalNumber(1, 1<<20)
	if err != nil {
		return err
	}

	dbg.state = govern.Stepping
	defer func() { dbg.state = govern.Paused }()

	for i := uint64(0); i < n; i++ {
		if err := dbg.nes.Step(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, dbg.nes.CPU.LastResult.String())
	}

	return nil
}

func (dbg *Debugger) cmdTrace(tokens *commandline.Tokens) error {
	n, err := tokens.GetOptionalNumber(10, 1<<20)
	if err != nil {
		return err
	}

	dbg.state = govern.Stepping
	defer func() { dbg.state = govern.Paused }()

	return disassembly.WriteTrace(dbg.writer(terminal.StyleCPUStep), dbg.nes, int(n))
}

func (dbg *Debugger) cmdFrame(tokens *commandline.Tokens) error {
	n, err := tokens.GetOptionalNumber(1, 1<<20)
	if err != nil {
		return err
	}

	dbg.state = govern.Running
	defer func() { dbg.state = govern.Paused }()

	err = dbg.nes.RunForFrameCount(int(n), nil)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleVideoStep, dbg.nes.PPU.String())

	return nil
}

// run the emulation until a breakpoint is reached or an interrupt signal is
// received.
func (dbg *Debugger) run() error {
	// discard any interrupt received while not running
	select {
	case <-dbg.interrupt:
	default:
	}

	dbg.state = govern.Running
	defer func() { dbg.state = govern.Paused }()

	return dbg.nes.Run(func() (govern.State, error) {
		select {
		case <-dbg.interrupt:
			dbg.printLine(terminal.StyleFeedback, "interrupted at $%04x", dbg.nes.CPU.PC.Address())
			return govern.Ending, nil
		default:
		}

		if dbg.breakpoints.check(dbg.nes.CPU.PC.Address()) {
			dbg.printLine(terminal.StyleFeedback, "break on PC $%04x", dbg.nes.CPU.PC.Address())
			return govern.Ending, nil
		}

		return govern.Running, nil
	})
}

func (dbg *Debugger) cmdBreak(tokens *commandline.Tokens) error {
	if tokens.IsEnd() {
		dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.String())
		return nil
	}

	address, err := tokens.GetNumber("address", 0xffff)
	if err != nil {
		return err
	}

	if !dbg.breakpoints.add(uint16(address)) {
		return fmt.Errorf("breakpoint on $%04x already exists", address)
	}
	dbg.printLine(terminal.StyleFeedback, "breakpoint added on $%04x", address)

	return nil
}

func (dbg *Debugger) cmdClear(tokens *commandline.Tokens) error {
	if tokens.IsEnd() {
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "all breakpoints cleared")
		return nil
	}

	address, err := tokens.GetNumber("address", 0xffff)
	if err != nil {
		return err
	}

	if !dbg.breakpoints.remove(uint16(address)) {
		return fmt.Errorf("no breakpoint on $%04x", address)
	}
	dbg.printLine(terminal.StyleFeedback, "breakpoint removed from $%04x", address)

	return nil
}

func (dbg *Debugger) cmdRAM(tokens *commandline.Tokens) error {
	if tokens.IsEnd() {
		dbg.printLine(terminal.StyleMachineInfo, dbg.nes.Mem.RAM.String())
		return nil
	}

	page, err := tokens.GetNumber("page", 0x07)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleMachineInfo, dbg.nes.Mem.RAM.Page(uint8(page)))

	return nil
}

func (dbg *Debugger) cmdPeek(tokens *commandline.Tokens) error {
	address, err := tokens.GetNumber("address", 0xffff)
	if err != nil {
		return err
	}

	n, err := tokens.GetOptionalNumber(1, 0x100)
	if err != nil {
		return err
	}

	for i := uint64(0); i < n; i++ {
		a := uint16(address + i)
		dbg.printLine(terminal.StyleMachineInfo, "%s = $%02x", addresses.Label(a, true), dbg.nes.Mem.Peek(a))
	}

	return nil
}

func (dbg *Debugger) cmdPoke(tokens *commandline.Tokens) error {
	address, err := tokens.GetNumber("address", 0xffff)
	if err != nil {
		return err
	}

	value, err := tokens.GetNumber("value", 0xff)
	if err != nil {
		return err
	}

	if err := dbg.nes.Mem.Poke(uint16(address), uint8(value)); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleMachineInfo, "%s = $%02x", addresses.Label(uint16(address), true), dbg.nes.Mem.Peek(uint16(address)))

	return nil
}

func (dbg *Debugger) cmdDisasm(tokens *commandline.Tokens) error {
	address, err := tokens.GetOptionalNumber(uint64(dbg.nes.CPU.PC.Address()), 0xffff)
	if err != nil {
		return err
	}

	n, err := tokens.GetOptionalNumber(10, 0x1000)
	if err != nil {
		return err
	}

	_, err = disassembly.Listing(dbg.writer(terminal.StyleCPUStep), dbg.nes.Mem, uint16(address), int(n))
	return err
}

func (dbg *Debugger) cmdController(tokens *commandline.Tokens, pressed bool) error {
	port, err := tokens.GetNumber("port", input.NumPorts)
	if err != nil {
		return err
	}
	if port < 1 {
		return fmt.Errorf("ports are numbered from 1")
	}

	name, ok := tokens.Get()
	if !ok {
		return curated.Errorf(commandline.MissingArgument, "button")
	}
	button, ok := input.ParseButton(name)
	if !ok {
		return fmt.Errorf("unknown button (%s)", name)
	}

	return dbg.nes.Input.HandleInputEvent(input.Event{
		Port:    int(port - 1),
		Button:  button,
		Pressed: pressed,
	})
}

func (dbg *Debugger) cmdSave(tokens *commandline.Tokens) error {
	data, err := dbg.nes.SaveState()
	if err != nil {
		return err
	}

	filename, ok := tokens.Get()
	if !ok {
		dbg.snapshot = data
		dbg.printLine(terminal.StyleFeedback, "state saved to memory")
		return nil
	}

	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "state saved to %s", filename)

	return nil
}

func (dbg *Debugger) cmdLoad(tokens *commandline.Tokens) error {
	data := dbg.snapshot

	filename, ok := tokens.Get()
	if ok {
		var err error
		data, err = os.ReadFile(filename)
		if err != nil {
			return err
		}
	} else if data == nil {
		return fmt.Errorf("no state has been saved to memory")
	}

	if err := dbg.nes.LoadState(data); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "state loaded. PC is $%04x", dbg.nes.CPU.PC.Address())

	return nil
}

func (dbg *Debugger) cmdMemviz(tokens *commandline.Tokens) (rerr error) {
	filename, ok := tokens.Get()
	if !ok {
		return curated.Errorf(commandline.MissingArgument, "file")
	}

	target, _ := tokens.Get()

	var v interface{}
	switch strings.ToUpper(target) {
	case "", "CPU":
		v = dbg.nes.CPU
	case "PPU":
		v = dbg.nes.PPU
	case "INPUT":
		v = dbg.nes.Input
	case "CART":
		v = dbg.nes.Cart
	default:
		return fmt.Errorf("unknown target (%s)", target)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, v)
	dbg.printLine(terminal.StyleFeedback, "structure written to %s", filename)

	return nil
}

func (dbg *Debugger) cmdHelp(tokens *commandline.Tokens) {
	if name, ok := tokens.Get(); ok {
		name = strings.ToUpper(name)
		for _, c := range commands {
			if c.name == name {
				dbg.printLine(terminal.StyleHelp, "%s %s", c.name, c.args)
				dbg.printLine(terminal.StyleHelp, c.help)
				return
			}
		}
		dbg.printLine(terminal.StyleError, UnknownCommand, name)
		return
	}

	for _, c := range commands {
		dbg.printLine(terminal.StyleHelp, "%-10s %s", c.name, c.help)
	}
}
