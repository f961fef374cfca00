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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.Output() function. The terminal implementation can interpret this
// how it sees fit; the most likely treatment is to print different styles in
// different colours.
type Style int

// List of valid Style values.
const (
	// the command entered by the user, echoed back
	StyleEcho Style = iota

	// information about the state of the CPU
	StyleCPUStep

	// information about the state of the PPU
	StyleVideoStep

	// information about the hardware other than the CPU and PPU
	StyleMachineInfo

	// information about the emulator rather than the emulated hardware
	StyleEmulatorInfo

	// help text
	StyleHelp

	// feedback from the debugger about a command
	StyleFeedback

	// errors are always printed, even when the terminal is silenced
	StyleError
)

// Sentinal errors returned by TermRead().
const (
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the line ending. An
	// io.EOF error indicates that there is no more input.
	TermRead(prompt string) (string, error)

	// IsInteractive returns true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. Not all terminal implementations will need to
	// do anything.
	Initialise() error

	// CleanUp restores the terminal to its original state.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
