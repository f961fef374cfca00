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

//go:build !windows

// Package colorterm implements the Terminal interface for the debugger. It
// supports color output, command history and line editing. The terminal is
// put into cbreak mode while input is being read.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	easyterm.Terminal

	reader   *bufio.Reader
	history  [][]byte
	silenced bool
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	ct.reader = bufio.NewReader(os.Stdin)
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.Print("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleEcho:
		ct.Print(pen(white, false))
	case terminal.StyleCPUStep:
		ct.Print(pen(yellow, true))
	case terminal.StyleVideoStep:
		ct.Print(pen(magenta, false))
	case terminal.StyleMachineInfo:
		ct.Print(pen(cyan, true))
	case terminal.StyleEmulatorInfo:
		ct.Print(pen(blue, true))
	case terminal.StyleHelp:
		ct.Print(pen(white, false))
		ct.Print("  ")
	case terminal.StyleFeedback:
		ct.Print(pen(green, false))
	case terminal.StyleError:
		ct.Print(pen(red, true))
		ct.Print("* ")
	}

	ct.Print(s)
	ct.Print(normalPen)
	ct.Print("\n")
}
