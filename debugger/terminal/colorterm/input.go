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

package colorterm

import (
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/debugger/terminal/colorterm/easyterm"
)

// maximum length of a line of input.
const maxInput = 255

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	input := make([]byte, maxInput)
	er := make([]byte, utf8.UTFMax)

	n := 0
	cursor := 0
	history := len(ct.history)

	// the latest input is kept when scrolling through the history so that it
	// can be resumed
	buffInput := make([]byte, maxInput)
	buffN := 0

	// each iteration the line is cleared and redrawn. the cursor position is
	// stored and restored around the redraw
	ct.Print("\r%s", cursorMove(len(prompt)))

	recall := func(entry []byte) {
		n = copy(input, entry)
		ct.Print(cursorMove(n - cursor))
		cursor = n
	}

	for {
		ct.Print(cursorStore)
		ct.Print("%s\r%s%s%s%s", clearLine, boldPen, prompt, normalPen, string(input[:n]))
		ct.Print(cursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyCtrlC:
			ct.Print("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCtrlD:
			if n == 0 {
				ct.Print("\n")
				return "", io.EOF
			}

		case easyterm.KeyCarriageReturn:
			if n > 0 && (len(ct.history) == 0 || string(ct.history[len(ct.history)-1]) != string(input[:n])) {
				ct.history = append(ct.history, append([]byte{}, input[:n]...))
			}
			ct.Print("\n")
			return string(input[:n]), nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.history) {
						buffN = copy(buffInput, input[:n])
					}
					history--
					recall(ct.history[history])
				}
			case easyterm.CursorDown:
				if history < len(ct.history)-1 {
					history++
					recall(ct.history[history])
				} else if history == len(ct.history)-1 {
					history++
					recall(buffInput[:buffN])
				}
			case easyterm.CursorForward:
				if cursor < n {
					ct.Print(cursorForwardOne)
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.Print(cursorBackwardOne)
					cursor--
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				ct.Print(cursorBackwardOne)
				cursor--
				n--
				history = len(ct.history)
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)
				if n+m > maxInput {
					continue
				}
				copy(input[cursor+m:], input[cursor:n])
				copy(input[cursor:], er[:m])
				ct.Print(cursorMove(m))
				cursor += m
				n += m
				history = len(ct.history)
			}
		}
	}
}
