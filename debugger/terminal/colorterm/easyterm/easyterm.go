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

// Package easyterm puts a posix terminal into cbreak mode, so that the
// debugger can read key presses as they happen, and back again.
package easyterm

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TerminalError is the pattern for errors returned by Initialise().
const TerminalError = "easyterm: %v"

// Terminal is embedded by the colour terminal.
type Terminal struct {
	input  *os.File
	output *os.File

	// attributes when the terminal was initialised and the cbreak attributes
	// derived from them
	original unix.Termios
	cbreak   unix.Termios
}

// Initialise must be called before any other function. It fails if input
// is not a terminal.
func (pt *Terminal) Initialise(input, output *os.File) error {
	if input == nil || output == nil {
		return curated.Errorf(TerminalError, "input and output files are both required")
	}

	if err := termios.Tcgetattr(input.Fd(), &pt.original); err != nil {
		return curated.Errorf(TerminalError, err)
	}

	pt.input = input
	pt.output = output
	pt.cbreak = pt.original
	termios.Cfmakecbreak(&pt.cbreak)

	return nil
}

// CleanUp restores the terminal attributes that were in effect when
// Initialise() was called.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
}

// Print to the output file. The string is only treated as a format string if
// there are arguments.
func (pt *Terminal) Print(s string, a ...interface{}) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	pt.output.WriteString(s)
	pt.output.Sync()
}

func (pt *Terminal) setAttr(attr *unix.Termios) {
	if pt.input != nil {
		_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, attr)
	}
}

// CanonicalMode is line buffered input with echo.
func (pt *Terminal) CanonicalMode() {
	pt.setAttr(&pt.original)
}

// CBreakMode is unbuffered input without echo.
func (pt *Terminal) CBreakMode() {
	pt.setAttr(&pt.cbreak)
}

// Flush discards unread input and unwritten output.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	return termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH)
}
