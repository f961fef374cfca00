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

package colorterm

import "fmt"

// ansi colour codes.
const (
	red = iota + 1
	green
	yellow
	blue
	magenta
	cyan
	white
)

func pen(colour int, bright bool) string {
	if bright {
		return fmt.Sprintf("\033[1;3%dm", colour)
	}
	return fmt.Sprintf("\033[3%dm", colour)
}

const (
	normalPen         = "\033[0m"
	boldPen           = "\033[1m"
	clearLine         = "\033[2K"
	cursorStore       = "\0337"
	cursorRestore     = "\0338"
	cursorForwardOne  = "\033[1C"
	cursorBackwardOne = "\033[1D"
)

// cursorMove returns the sequence that moves the cursor horizontally by the
// number of columns. Negative values move the cursor backwards.
func cursorMove(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	}
	return ""
}
