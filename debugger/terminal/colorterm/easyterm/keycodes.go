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

package easyterm

// Bytes read from a terminal in cbreak mode that the colour terminal treats
// specially. Enter is read as a line feed.
const (
	KeyCtrlC          = 0x03
	KeyCtrlD          = 0x04
	KeyTab            = 0x09
	KeyCarriageReturn = 0x0a
	KeyEsc            = 0x1b
	KeyBackspace      = 0x7f
)

// The cursor keys are sent as KeyEsc, EscCursor and then one of the Cursor
// bytes.
const (
	EscCursor = '['

	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)
