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
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/debugger/terminal/commandline"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/version"
)

// Debugger is the command-line debugger for the emulation.
type Debugger struct {
	nes  *hardware.NES
	term terminal.Terminal

	state       govern.State
	breakpoints *breakpoints

	// the most recent non-empty input. an empty line repeats it
	lastInput string

	// the state saved by SAVE when no file is given
	snapshot []byte

	// interrupt signals from the operating system. RUN stops when a signal
	// is received
	interrupt chan os.Signal
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The console should already have a cartridge attached.
func NewDebugger(nes *hardware.NES, term terminal.Terminal) *Debugger {
	return &Debugger{
		nes:         nes,
		term:        term,
		state:       govern.Initialising,
		breakpoints: newBreakpoints(),
		interrupt:   make(chan os.Signal, 1),
	}
}

// State returns the current emulation state.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(style, s)
}

// writer returns an io.Writer that sends each line written to the terminal
// with the style.
func (dbg *Debugger) writer(style terminal.Style) io.Writer {
	return &lineWriter{term: dbg.term, style: style}
}

func (dbg *Debugger) prompt() string {
	return fmt.Sprintf("[ $%04x %s ] > ", dbg.nes.CPU.PC.Address(), dbg.nes.PPU)
}

// Start the debugger input loop. Returns when the user quits or the input is
// exhausted.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.interrupt, os.Interrupt)
	defer signal.Stop(dbg.interrupt)

	dbg.state = govern.Paused
	dbg.printLine(terminal.StyleEmulatorInfo, version.String())
	logger.Logf(logger.Allow, "debugger", "started with %s", dbg.nes.Cart)

	for dbg.state != govern.Ending {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if err == io.EOF {
				break
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use QUIT to leave the debugger")
				continue
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	dbg.state = govern.Ending

	return nil
}

// parseInput runs the command in the input. An empty input repeats the
// previous command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := commandline.TokeniseInput(input)
	if tokens.Remaining() == 0 {
		if dbg.lastInput == "" {
			return nil
		}
		tokens = commandline.TokeniseInput(dbg.lastInput)
	} else {
		dbg.lastInput = input
		dbg.term.TermPrintLine(terminal.StyleEcho, input)
	}

	return dbg.processTokens(tokens)
}

// lineWriter implements the io.Writer interface.
type lineWriter struct {
	term    terminal.Output
	style   terminal.Style
	partial []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.partial = append(w.partial, p...)
	for {
		i := bytes.IndexByte(w.partial, '\n')
		if i < 0 {
			break
		}
		w.term.TermPrintLine(w.style, string(w.partial[:i]))
		w.partial = w.partial[i+1:]
	}
	return len(p), nil
}
